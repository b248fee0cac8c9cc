package hirefraction

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

func newTestClient(t *testing.T, handler fasthttp.RequestHandler) *Client {
	t.Helper()

	ln := fasthttputil.NewInmemoryListener()
	server := &fasthttp.Server{Handler: handler}
	go func() {
		_ = server.Serve(ln)
	}()
	t.Cleanup(func() {
		_ = server.Shutdown()
		_ = ln.Close()
	})

	client, err := NewClient(ClientConfig{
		URL:     "http://hirefraction.test/api/test/baseball",
		Timeout: 2 * time.Second,
		HTTPClient: &fasthttp.Client{
			Dial: func(string) (net.Conn, error) { return ln.Dial() },
		},
	})
	require.NoError(t, err)
	return client
}

func TestFetchPlayersDecodesRecords(t *testing.T) {
	client := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		assert.Equal(t, "/api/test/baseball", string(ctx.Path()))
		assert.Equal(t, "application/json", string(ctx.Request.Header.Peek(fasthttp.HeaderAccept)))
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`[
			{"Player name": "Test Player", "position": "LF", "Games": "150", "home run": 35, "AVG": ".301"},
			{"Player name": "Other", "position": null, "Hits": "n/a"}
		]`)
	})

	records, err := client.FetchPlayers(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Test Player", records[0]["Player name"])
	assert.Equal(t, "150", records[0]["Games"])
	assert.Equal(t, float64(35), records[0]["home run"])
	assert.Nil(t, records[1]["position"])
}

func TestFetchPlayersRejectsNonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusBadGateway)
		ctx.SetBodyString("upstream down")
	})

	_, err := client.FetchPlayers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=502")
	assert.Contains(t, err.Error(), "upstream down")
}

func TestFetchPlayersEmptyBodyHasNoRecords(t *testing.T) {
	client := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
	})

	records, err := client.FetchPlayers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFetchPlayersMalformedJSON(t *testing.T) {
	client := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetBodyString(`{"not": "an array"}`)
	})

	_, err := client.FetchPlayers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode player records")
}

func TestFetchPlayersHonoursCancelledContext(t *testing.T) {
	client := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		t.Error("request should not be sent")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.FetchPlayers(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClientValidatesURL(t *testing.T) {
	_, err := NewClient(ClientConfig{URL: "ftp://example.com/data"})
	assert.Error(t, err)

	client, err := NewClient(ClientConfig{})
	require.NoError(t, err)
	assert.Equal(t, DefaultURL, client.url)
	assert.Equal(t, DefaultTimeout, client.timeout)
}
