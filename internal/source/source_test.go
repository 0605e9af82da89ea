package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"worldcountries/internal/detect"
	"worldcountries/internal/order"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testClient(t *testing.T) *http.Client {
	t.Helper()
	c := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	t.Cleanup(c.CloseIdleConnections)
	return c
}

func serve(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func names(r Result) []string {
	out := make([]string, len(r.Countries))
	for i, c := range r.Countries {
		out[i] = c.Name
	}
	return out
}

func TestLoadHTTPNormalizesAndSorts(t *testing.T) {
	var gotUA string
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":{"common":"chad"},"population":16,"area":1284000,"borders":["a","b"],"flags":{"svg":"https://f/td.svg"}},
			{"name":{"common":"Belgium"},"population":11,"area":30528},
			{"name":{"common":"Austria"},"population":9,"area":83871,"borders":["x"]},
			{"name":{"common":"Belgium"},"population":12,"area":30528}
		]`))
	})
	res, err := Load(context.Background(), Options{Endpoint: srv.URL, Client: testClient(t), UserAgent: "test-agent", Sorter: order.MustNew("en")})
	require.NoError(t, err)
	assert.Equal(t, "test-agent", gotUA)
	assert.Equal(t, []string{"Austria", "Belgium", "chad"}, names(res))
	assert.Equal(t, 1, res.Duplicates)
	assert.Equal(t, 4, res.Records)
	assert.Equal(t, detect.VariantV31, res.Variant)
	assert.EqualValues(t, 12, res.Countries[1].Population, "last writer wins")
	assert.NotNil(t, res.Countries[1].Borders)
}

func TestLoadHTTPStatusError(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":500,"message":"boom"}`, http.StatusInternalServerError)
	})
	_, err := Load(context.Background(), Options{Endpoint: srv.URL, Client: testClient(t)})
	require.Error(t, err)
	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, http.StatusInternalServerError, le.Status)
	assert.True(t, errors.Is(err, ErrStatus))
}

func TestLoadMalformedPayload(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	})
	_, err := Load(context.Background(), Options{Endpoint: srv.URL, Client: testClient(t)})
	require.Error(t, err)
	assert.True(t, IsLoadError(err))
	assert.True(t, errors.Is(err, ErrPayload))
}

func TestLoadNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	_, err := Load(context.Background(), Options{Endpoint: url, Client: testClient(t)})
	require.Error(t, err)
	assert.True(t, IsLoadError(err))
}

func TestLoadTimeout(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	start := time.Now()
	_, err := Load(context.Background(), Options{Endpoint: srv.URL, Client: testClient(t), Timeout: 50 * time.Millisecond})
	require.Error(t, err)
	assert.True(t, IsLoadError(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestLoadFileAndDemo(t *testing.T) {
	p := filepath.Join(t.TempDir(), "countries.json")
	require.NoError(t, os.WriteFile(p, []byte(`[{"name":"Peru","population":"33000000"},{"name":"Chile"}]`), 0o644))
	res, err := Load(context.Background(), Options{Kind: KindFile, Path: p})
	require.NoError(t, err)
	assert.Equal(t, []string{"Chile", "Peru"}, names(res))
	assert.Equal(t, detect.VariantV2, res.Variant)

	_, err = Load(context.Background(), Options{Kind: KindFile, Path: filepath.Join(t.TempDir(), "missing.json")})
	assert.True(t, IsLoadError(err))

	demo, err := Load(context.Background(), Options{Kind: KindDemo})
	require.NoError(t, err)
	assert.Len(t, demo.Countries, 19)
	assert.Equal(t, "Åland Islands", demo.Countries[0].Name)
	for _, c := range demo.Countries {
		assert.NotNil(t, c.Borders, c.Name)
	}
}

func TestLoadErrorMessage(t *testing.T) {
	err := &LoadError{Source: "x", Status: 404, Err: ErrStatus}
	assert.Equal(t, "load x: status 404: unexpected status", err.Error())
	assert.Equal(t, "load x: unexpected status", (&LoadError{Source: "x", Err: ErrStatus}).Error())
	_, err2 := Load(context.Background(), Options{Kind: "ftp"})
	assert.True(t, IsLoadError(err2))
}
