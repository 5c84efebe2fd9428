package notifier

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/service/ens"
)

type Config struct {
	DiscordBotKey     string
	DiscordChannelId  string
	SiteUrl           string
	MinorUnitsPerUnit int64
}

type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type discordNotifier struct {
	config Config
	sender embedSender
	ens    ens.ENS
}

// New posts auction events to a discord channel. Without a bot key every event is dropped.
func New(config Config, ens ens.ENS) (auction.Notifier, error) {
	if config.DiscordBotKey == "" {
		return noop{}, nil
	}
	session, err := discordgo.New(fmt.Sprintf("Bot %s", config.DiscordBotKey))
	if err != nil {
		return nil, err
	}
	return newWithSender(config, session, ens), nil
}

func newWithSender(config Config, sender embedSender, ens ens.ENS) *discordNotifier {
	if config.MinorUnitsPerUnit <= 0 {
		config.MinorUnitsPerUnit = auction.DefaultMinorUnitsPerUnit
	}
	return &discordNotifier{config, sender, ens}
}

func (n *discordNotifier) link(assetId domain.AssetId) string {
	return fmt.Sprintf("%s/auctions/%s", strings.TrimRight(n.config.SiteUrl, "/"), assetId)
}

func (n *discordNotifier) party(c ctx.Ctx, address domain.Address) string {
	name := n.ens.DisplayName(c, address)
	if name == address.ToLowerStr() || name == string(address) {
		return string(address)
	}
	return fmt.Sprintf("%s (%s)", address, name)
}

func (n *discordNotifier) units(minor int64) string {
	return decimal.NewFromInt(minor).Div(decimal.NewFromInt(n.config.MinorUnitsPerUnit)).String()
}

func (n *discordNotifier) embed(a *auction.Auction, title string, fields ...*discordgo.MessageEmbedField) *discordgo.MessageEmbed {
	msg := &discordgo.MessageEmbed{
		Title:       title,
		Description: n.link(a.AssetId),
		Fields:      fields,
	}
	if a.Name != "" {
		msg.Title = fmt.Sprintf("%s: %s", title, a.Name)
	}
	if a.ImageUrl != "" {
		msg.Image = &discordgo.MessageEmbedImage{URL: a.ImageUrl}
	}
	return msg
}

func (n *discordNotifier) send(msg *discordgo.MessageEmbed) error {
	if _, err := n.sender.ChannelMessageSendEmbed(n.config.DiscordChannelId, msg); err != nil {
		return err
	}
	return nil
}

func (n *discordNotifier) AuctionSettled(c ctx.Ctx, a *auction.Auction, split auction.Split) error {
	return n.send(n.embed(a, "Auction settled",
		&discordgo.MessageEmbedField{Name: "Seller", Value: n.party(c, a.Owner)},
		&discordgo.MessageEmbedField{Name: "Buyer", Value: n.party(c, a.Buyer)},
		&discordgo.MessageEmbedField{Name: "Price", Value: split.Price.String()},
		&discordgo.MessageEmbedField{Name: "Seller receives", Value: n.units(split.OwnerAmount), Inline: true},
		&discordgo.MessageEmbedField{Name: "Fee", Value: n.units(split.FeeAmount), Inline: true},
	))
}

func (n *discordNotifier) AuctionReclaimed(c ctx.Ctx, a *auction.Auction) error {
	return n.send(n.embed(a, "Auction reclaimed",
		&discordgo.MessageEmbedField{Name: "Owner", Value: n.party(c, a.Owner)},
		&discordgo.MessageEmbedField{Name: "Floor price", Value: a.FloorPrice.String()},
	))
}

func (n *discordNotifier) FloorReached(c ctx.Ctx, a *auction.Auction) error {
	return n.send(n.embed(a, "Auction at floor price",
		&discordgo.MessageEmbedField{Name: "Owner", Value: n.party(c, a.Owner)},
		&discordgo.MessageEmbedField{Name: "Floor price", Value: a.FloorPrice.String()},
	))
}

type noop struct{}

func (noop) AuctionSettled(ctx.Ctx, *auction.Auction, auction.Split) error { return nil }
func (noop) AuctionReclaimed(ctx.Ctx, *auction.Auction) error              { return nil }
func (noop) FloorReached(ctx.Ctx, *auction.Auction) error                  { return nil }
