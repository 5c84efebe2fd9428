package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestDocRenders(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	doc := struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths       map[string]map[string]interface{} `json:"paths"`
		Definitions map[string]interface{}            `json:"definitions"`
	}{}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	require.Equal(t, SwaggerInfo.Title, doc.Info.Title)

	routes := map[string]string{
		"/auctions":                      "get",
		"/auctions/{assetId}":            "get",
		"/auctions/{assetId}/price":      "get",
		"/auctions/{assetId}/activities": "get",
		"/auctions/{assetId}/provision":  "post",
		"/auctions/{assetId}/open":       "post",
		"/auctions/{assetId}/settle":     "post",
		"/auctions/{assetId}/reclaim":    "post",
		"/ledger/{holder}":               "get",
		"/ledger/credit":                 "post",
		"/ledger/assets":                 "post",
		"/auth/nonce/{address}":          "get",
		"/auth/sign":                     "post",
		"/auth/signingMsgTemplate":       "get",
		"/ens/reverse-resolve/{address}": "get",
		"/health":                        "get",
	}
	require.Len(t, doc.Paths, len(routes))
	for path, method := range routes {
		require.Contains(t, doc.Paths[path], method, path)
	}
	require.Contains(t, doc.Definitions, "auction.View")
}
