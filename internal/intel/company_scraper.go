package intel

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

// maxCultureTextLen caps stored culture text; the dimension builder
// only needs keyword signal, not the whole page.
const maxCultureTextLen = 8000

const minCultureTextLen = 80

// cultureSelectors are tried in order; the first selector yielding
// enough text wins. Careers pages usually keep culture copy in the
// main content region.
var cultureSelectors = []string{"main", "article", ".culture", ".values", "body"}

var strippedSelectors = "script,style,nav,header,footer,form,noscript"

func fetchCultureText(ctx context.Context, pageURL string) (string, error) {
	allowed := hostFromURL(pageURL)
	var c *colly.Collector
	if allowed == "" {
		c = colly.NewCollector()
	} else {
		c = colly.NewCollector(colly.AllowedDomains(allowed))
	}
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 1, RandomDelay: 850 * time.Millisecond, Delay: 450 * time.Millisecond})

	candidates := make(map[string]string, len(cultureSelectors))

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	for _, sel := range cultureSelectors {
		sel := sel
		c.OnHTML(sel, func(e *colly.HTMLElement) {
			if _, ok := candidates[sel]; ok {
				return
			}
			dom := e.DOM.Clone()
			dom.Find(strippedSelectors).Remove()
			candidates[sel] = collapseWhitespace(dom.Text())
		})
	}

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if err := c.Visit(pageURL); err != nil {
		return "", err
	}
	c.Wait()
	if reqErr != nil {
		return "", reqErr
	}

	for _, sel := range cultureSelectors {
		text := candidates[sel]
		if len(text) >= minCultureTextLen {
			return truncate(text, maxCultureTextLen), nil
		}
	}
	return "", fmt.Errorf("no usable culture text at %s", pageURL)
}

func httpHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.9",
	}
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return cut
}

func hostFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := u.Host
	if host == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
