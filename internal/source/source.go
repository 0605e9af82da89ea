package source

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"worldcountries/internal/detect"
	"worldcountries/internal/model"
	"worldcountries/internal/order"
	"worldcountries/internal/parse"
	"worldcountries/internal/util"
	"worldcountries/internal/util/logx"
	"worldcountries/internal/version"
)

type Kind string

const (
	KindHTTP Kind = "http"
	KindFile Kind = "file"
	KindDemo Kind = "demo"
)

const DefaultEndpoint = "https://restcountries.com/v3.1/all?fields=name,population,area,borders,flags,cca3,region"

// maxPayload bounds the response body; the full directory is well under 1 MB.
const maxPayload = 16 << 20

//go:embed demo/countries.json
var demoPayload []byte

type Options struct {
	Kind      Kind
	Endpoint  string
	Path      string
	Timeout   time.Duration
	UserAgent string
	Client    *http.Client
	Sorter    *order.Sorter
}

type Result struct {
	Countries  []model.Country
	Variant    detect.Variant
	Records    int
	Skipped    int
	Duplicates int
	Elapsed    time.Duration
}

func (o Options) describe() string {
	switch o.Kind {
	case KindFile:
		return o.Path
	case KindDemo:
		return "demo"
	default:
		return util.RedactURL(o.Endpoint)
	}
}

// Load fetches and normalizes the country directory once. Countries come back
// sorted by name ascending with duplicate names collapsed. Every failure is a
// *LoadError.
func Load(ctx context.Context, opt Options) (Result, error) {
	start := time.Now()
	if opt.Kind == "" {
		opt.Kind = KindHTTP
	}
	if opt.Kind == KindHTTP && opt.Endpoint == "" {
		opt.Endpoint = DefaultEndpoint
	}
	if opt.Sorter == nil {
		opt.Sorter = order.MustNew("")
	}
	src := opt.describe()
	logx.Infof("source: loading kind=%s from %s", opt.Kind, src)

	data, status, err := read(ctx, opt)
	if err != nil {
		logx.Errorf("source: load failed: %v", err)
		return Result{}, &LoadError{Source: src, Status: status, Err: err}
	}
	countries, st, err := parse.Countries(data)
	if err != nil {
		logx.Errorf("source: parse failed: %v", err)
		return Result{}, &LoadError{Source: src, Status: status, Err: fmt.Errorf("%w: %w", ErrPayload, err)}
	}
	opt.Sorter.ByName(countries)
	coll, dupes := model.NewCollection(countries)
	res := Result{
		Countries:  coll.Snapshot(),
		Variant:    st.Guess.Variant,
		Records:    st.Records,
		Skipped:    st.Skipped,
		Duplicates: dupes,
		Elapsed:    time.Since(start),
	}
	logx.Infof("source: loaded %d countries (records=%d skipped=%d duplicates=%d variant=%s conf=%.2f) in %s",
		len(res.Countries), res.Records, res.Skipped, res.Duplicates, res.Variant, st.Guess.Confidence, res.Elapsed.Round(time.Millisecond))
	return res, nil
}

func read(ctx context.Context, opt Options) ([]byte, int, error) {
	switch opt.Kind {
	case KindDemo:
		return demoPayload, 0, nil
	case KindFile:
		if strings.TrimSpace(opt.Path) == "" {
			return nil, 0, errors.New("no file path")
		}
		b, err := os.ReadFile(opt.Path)
		return b, 0, err
	case KindHTTP:
		return fetch(ctx, opt)
	}
	return nil, 0, fmt.Errorf("unknown source kind %q", opt.Kind)
}

func fetch(ctx context.Context, opt Options) ([]byte, int, error) {
	client := opt.Client
	if client == nil {
		client = &http.Client{Timeout: opt.Timeout}
	}
	if opt.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opt.Timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opt.Endpoint, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	ua := opt.UserAgent
	if ua == "" {
		ua = "worldcountries/" + version.Version
	}
	req.Header.Set("User-Agent", ua)

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, resp.StatusCode, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxPayload+1))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read body: %w", err)
	}
	if len(b) > maxPayload {
		return nil, resp.StatusCode, fmt.Errorf("%w: body exceeds %d bytes", ErrPayload, maxPayload)
	}
	return b, resp.StatusCode, nil
}
