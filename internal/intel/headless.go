package intel

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// fetchCultureTextHeadless renders the page in headless Chrome for
// careers sites that build their content client-side.
func fetchCultureTextHeadless(ctx context.Context, pageURL string) (string, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, 25*time.Second)
	defer reqCancel()

	var text string
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.EvaluateAsDevTools(`(() => {
			const root = document.querySelector('main') || document.querySelector('article') || document.body;
			const clone = root.cloneNode(true);
			clone.querySelectorAll('script,style,nav,header,footer,form,noscript').forEach(n => n.remove());
			return clone.innerText;
		})()`, &text),
	)
	if err != nil {
		return "", err
	}

	text = collapseWhitespace(text)
	if len(text) < minCultureTextLen {
		return "", fmt.Errorf("no usable culture text at %s (headless)", pageURL)
	}
	return truncate(text, maxCultureTextLen), nil
}
