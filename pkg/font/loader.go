package font

import (
	"sync"

	"github.com/zeromicro/go-zero/core/logx"
)

// Set is a set of stylesheet URLs already requested.
type Set map[string]struct{}

// Has reports whether url is in the set.
func (s Set) Has(url string) bool {
	_, ok := s[url]
	return ok
}

// EnsureLoaded is the functional form of Loader.Ensure. It returns the URL
// to request (empty when nothing should be loaded) and the updated set. The
// input set is never mutated.
func EnsureLoaded(base, name string, loaded Set) (string, Set) {
	if Skipped(name) {
		return "", loaded
	}
	url := StylesheetURL(base, name)
	if loaded.Has(url) {
		return "", loaded
	}

	updated := make(Set, len(loaded)+1)
	for u := range loaded {
		updated[u] = struct{}{}
	}
	updated[url] = struct{}{}
	return url, updated
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithBaseURL sets the fonts host used to build stylesheet URLs.
func WithBaseURL(base string) LoaderOption {
	return func(l *Loader) {
		l.base = base
	}
}

// WithOnLoad sets the side effect run once for every newly requested URL.
func WithOnLoad(fn func(url string)) LoaderOption {
	return func(l *Loader) {
		l.onLoad = fn
	}
}

// Loader tracks which font stylesheets have been requested and makes sure
// each one is requested at most once. The set is append-only.
type Loader struct {
	mu     sync.Mutex
	base   string
	onLoad func(url string)
	loaded Set
	order  []string
}

// NewLoader creates an empty loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		base:   GoogleFontsBase,
		loaded: make(Set),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Ensure requests the stylesheet for name unless it was already requested or
// never needs one. It returns the stylesheet URL (empty for skipped names) and
// whether a new load was issued by this call.
func (l *Loader) Ensure(name string) (string, bool) {
	if Skipped(name) {
		return "", false
	}

	l.mu.Lock()
	url := StylesheetURL(l.base, name)
	if l.loaded.Has(url) {
		l.mu.Unlock()
		return url, false
	}
	l.loaded[url] = struct{}{}
	l.order = append(l.order, url)
	onLoad := l.onLoad
	l.mu.Unlock()

	logx.Debugw("font stylesheet requested", logx.Field("font", name), logx.Field("url", url))
	fontsLoaded.Inc()
	if onLoad != nil {
		onLoad(url)
	}
	return url, true
}

// Loaded returns the requested URLs in request order.
func (l *Loader) Loaded() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// Len returns the number of requested URLs.
func (l *Loader) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.order)
}
