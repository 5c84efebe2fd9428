package notifier

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
)

const (
	owner = domain.Address("0x00000000000000000000000000000000000000aa")
	buyer = domain.Address("0x00000000000000000000000000000000000000bb")
)

type recordingSender struct {
	channel string
	sent    []*discordgo.MessageEmbed
	err     error
}

func (s *recordingSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.channel = channelID
	s.sent = append(s.sent, embed)
	return &discordgo.Message{}, nil
}

type names map[domain.Address]string

func (n names) ReverseResolve(c ctx.Ctx, address domain.Address) (string, error) {
	return n[address], nil
}

func (n names) DisplayName(c ctx.Ctx, address domain.Address) string {
	if name := n[address]; name != "" {
		return name
	}
	return address.ToLowerStr()
}

func settled() *auction.Auction {
	price := decimal.NewFromInt(9)
	return &auction.Auction{
		AssetId:      "nft:1",
		Owner:        owner,
		Buyer:        buyer,
		Name:         "Genesis",
		ImageUrl:     "https://img.example/1.png",
		SettledPrice: &price,
		Terms:        auction.Terms{FloorPrice: decimal.NewFromInt(5)},
	}
}

func TestAuctionSettled(t *testing.T) {
	sender := &recordingSender{}
	n := newWithSender(Config{DiscordChannelId: "chan", SiteUrl: "https://auction.example/"}, sender, names{buyer: "bob.eth"})

	split, err := auction.SplitPrice(decimal.NewFromInt(9), auction.DefaultMinorUnitsPerUnit)
	require.NoError(t, err)
	require.NoError(t, n.AuctionSettled(ctx.Background(), settled(), split))

	require.Equal(t, "chan", sender.channel)
	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	require.Equal(t, "Auction settled: Genesis", msg.Title)
	require.Equal(t, "https://auction.example/auctions/nft:1", msg.Description)
	require.Equal(t, "https://img.example/1.png", msg.Image.URL)

	values := map[string]string{}
	for _, f := range msg.Fields {
		values[f.Name] = f.Value
	}
	require.Equal(t, string(owner), values["Seller"])
	require.Equal(t, string(buyer)+" (bob.eth)", values["Buyer"])
	require.Equal(t, "9", values["Price"])
	require.Equal(t, "8.55", values["Seller receives"])
	require.Equal(t, "0.45", values["Fee"])
}

func TestAuctionReclaimed(t *testing.T) {
	sender := &recordingSender{}
	n := newWithSender(Config{DiscordChannelId: "chan"}, sender, names{})

	a := settled()
	a.Name = ""
	a.ImageUrl = ""
	require.NoError(t, n.AuctionReclaimed(ctx.Background(), a))
	require.Len(t, sender.sent, 1)
	require.Equal(t, "Auction reclaimed", sender.sent[0].Title)
	require.Nil(t, sender.sent[0].Image)
	require.Equal(t, "5", sender.sent[0].Fields[1].Value)
}

func TestSendFailure(t *testing.T) {
	n := newWithSender(Config{}, &recordingSender{err: errors.New("rate limited")}, names{})
	require.Error(t, n.FloorReached(ctx.Background(), settled()))
}

func TestNoopWithoutBotKey(t *testing.T) {
	n, err := New(Config{}, names{})
	require.NoError(t, err)
	require.NoError(t, n.AuctionSettled(ctx.Background(), settled(), auction.Split{}))
	require.NoError(t, n.FloorReached(ctx.Background(), settled()))
}
