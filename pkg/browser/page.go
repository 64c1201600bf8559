package browser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/chromedp"
)

// FocusedProp is a pseudo-property reporting "true" when the element is
// document.activeElement.
const FocusedProp = "@focused"

// Page is one open tab. Its lifetime is bounded by the context given to
// OpenPage: when that context ends the tab is closed.
type Page struct {
	ctx    context.Context
	cancel context.CancelFunc
	stop   func() bool
}

// OpenPage opens a tab at url with the session's default viewport and waits
// for the document body.
func (s *Session) OpenPage(ctx context.Context, url string) (*Page, error) {
	if !s.Alive() {
		return nil, ErrClosed
	}
	tabCtx, cancel := chromedp.NewContext(s.ctx)
	p := &Page{
		ctx:    tabCtx,
		cancel: cancel,
		stop:   context.AfterFunc(ctx, cancel),
	}
	err := chromedp.Run(tabCtx,
		chromedp.EmulateViewport(s.viewport.Width, s.viewport.Height),
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
	if err != nil {
		_ = p.Close()
		if ctx.Err() != nil {
			return nil, fmt.Errorf("opening %s: %w", url, ctx.Err())
		}
		return nil, fmt.Errorf("opening %s: %w", url, err)
	}
	return p, nil
}

// Close closes the tab. It is safe to call more than once.
func (p *Page) Close() error {
	p.stop()
	err := chromedp.Cancel(p.ctx)
	p.cancel()
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("closing page: %w", err)
	}
	return nil
}

// SetViewport resizes the page.
func (p *Page) SetViewport(v Viewport) error {
	if err := chromedp.Run(p.ctx, chromedp.EmulateViewport(v.Width, v.Height)); err != nil {
		return fmt.Errorf("set viewport %dx%d: %w", v.Width, v.Height, err)
	}
	return nil
}

// Settle waits d so CSS transitions can progress.
func (p *Page) Settle(d time.Duration) error {
	if d <= 0 {
		return nil
	}
	return chromedp.Run(p.ctx, chromedp.Sleep(d))
}

type point struct {
	Found bool    `json:"found"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Hover scrolls sel into view and moves the mouse to its center, which
// triggers :hover rules.
func (p *Page) Hover(sel string) error {
	js := fmt.Sprintf(`(() => {
		const el = document.querySelector(%s);
		if (!el) return {found: false, x: 0, y: 0};
		el.scrollIntoView({block: "center", inline: "center"});
		const r = el.getBoundingClientRect();
		return {found: true, x: r.left + r.width / 2, y: r.top + r.height / 2};
	})()`, jsString(sel))
	var pt point
	if err := chromedp.Run(p.ctx, chromedp.Evaluate(js, &pt)); err != nil {
		return fmt.Errorf("hover %s: %w", sel, err)
	}
	if !pt.Found {
		return notFound(sel)
	}
	if err := chromedp.Run(p.ctx, chromedp.MouseEvent(input.MouseMoved, pt.X, pt.Y)); err != nil {
		return fmt.Errorf("hover %s: %w", sel, err)
	}
	return nil
}

// Click clicks the first element matching sel.
func (p *Page) Click(sel string) error {
	if err := p.mustExist(sel); err != nil {
		return err
	}
	if err := chromedp.Run(p.ctx, chromedp.Click(sel, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("click %s: %w", sel, err)
	}
	return nil
}

// Focus gives keyboard focus to the first element matching sel.
func (p *Page) Focus(sel string) error {
	if err := p.mustExist(sel); err != nil {
		return err
	}
	if err := chromedp.Run(p.ctx, chromedp.Focus(sel, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("focus %s: %w", sel, err)
	}
	return nil
}

// WaitVisible blocks until sel is rendered and visible or the page context
// ends.
func (p *Page) WaitVisible(sel string) error {
	if err := chromedp.Run(p.ctx, chromedp.WaitVisible(sel, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("wait for %s: %w", sel, err)
	}
	return nil
}

type styleRead struct {
	Found  bool              `json:"found"`
	Values map[string]string `json:"values"`
}

// ComputedStyle reads the resolved values of props on the first element
// matching sel. FocusedProp may be requested alongside CSS properties.
// Properties the browser does not know come back as "".
func (p *Page) ComputedStyle(sel string, props ...string) (map[string]string, error) {
	return p.readStyle(sel, "window.getComputedStyle(el)", props)
}

// InlineStyle reads props from the element's style attribute only.
func (p *Page) InlineStyle(sel string, props ...string) (map[string]string, error) {
	return p.readStyle(sel, "el.style", props)
}

func (p *Page) readStyle(sel, source string, props []string) (map[string]string, error) {
	js := fmt.Sprintf(`(() => {
		const el = document.querySelector(%s);
		if (!el) return {found: false, values: {}};
		const cs = %s;
		const out = {};
		for (const p of %s) {
			if (p === %s) { out[p] = String(document.activeElement === el); continue; }
			const v = cs[p];
			out[p] = (v === undefined || v === null) ? "" : String(v);
		}
		return {found: true, values: out};
	})()`, jsString(sel), source, jsValue(props), jsString(FocusedProp))
	var res styleRead
	if err := chromedp.Run(p.ctx, chromedp.Evaluate(js, &res)); err != nil {
		return nil, fmt.Errorf("read style of %s: %w", sel, err)
	}
	if !res.Found {
		return nil, notFound(sel)
	}
	if res.Values == nil {
		res.Values = map[string]string{}
	}
	return res.Values, nil
}

// ApplyInlineStyle adds class to the element and sets each declaration in
// its style attribute. It stands in for states like :active that cannot be
// held through the protocol.
func (p *Page) ApplyInlineStyle(sel, class string, decls map[string]string) error {
	keys := slices.Sorted(maps.Keys(decls))
	ordered := make([][2]string, 0, len(keys))
	for _, k := range keys {
		ordered = append(ordered, [2]string{k, decls[k]})
	}
	js := fmt.Sprintf(`(() => {
		const el = document.querySelector(%s);
		if (!el) return false;
		const cls = %s;
		if (cls) el.classList.add(cls);
		for (const [k, v] of %s) el.style[k] = v;
		return true;
	})()`, jsString(sel), jsString(class), jsValue(ordered))
	var ok bool
	if err := chromedp.Run(p.ctx, chromedp.Evaluate(js, &ok)); err != nil {
		return fmt.Errorf("apply style to %s: %w", sel, err)
	}
	if !ok {
		return notFound(sel)
	}
	return nil
}

// WaitStable polls props on sel every interval until two consecutive reads
// agree or timeout passes. Running out of time is not an error; the caller's
// assertions decide whether the final state is acceptable.
func (p *Page) WaitStable(sel string, props []string, interval, timeout time.Duration) error {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	deadline := time.Now().Add(timeout)
	prev, err := p.ComputedStyle(sel, props...)
	if err != nil {
		return err
	}
	for time.Now().Before(deadline) {
		if err := p.Settle(interval); err != nil {
			return err
		}
		cur, err := p.ComputedStyle(sel, props...)
		if err != nil {
			return err
		}
		if maps.Equal(prev, cur) {
			return nil
		}
		prev = cur
	}
	return nil
}

func (p *Page) mustExist(sel string) error {
	js := fmt.Sprintf(`document.querySelector(%s) !== null`, jsString(sel))
	var ok bool
	if err := chromedp.Run(p.ctx, chromedp.Evaluate(js, &ok)); err != nil {
		return fmt.Errorf("query %s: %w", sel, err)
	}
	if !ok {
		return notFound(sel)
	}
	return nil
}

func notFound(sel string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, sel)
}

// jsString quotes s as a JavaScript string literal.
func jsString(s string) string {
	return jsValue(s)
}

func jsValue(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}
