package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const bodyTemplate = `{
	"items": [{"item_id": %q, "quantity": %d, "unit_price": %d}],
	"shipping_address": {
		"name": "Load Test", "line1": "1 Main St", "city": "San Francisco",
		"region": "CA", "postal_code": "94105", "country": "US"
	},
	"shipping_method": "standard"
}`

// Fires concurrent checkouts for one item. With stock N, at most N requests may end in
// 201 or 502; the rest must be rejected with 409.
func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service base url")
	item := flag.String("item", "", "item id to buy")
	price := flag.Int64("price", 0, "unit price the client believes in")
	qty := flag.Int("qty", 1, "quantity per checkout")
	total := flag.Int("n", 100, "number of checkouts")
	parallel := flag.Int("c", 20, "concurrent requests")
	flag.Parse()

	if *item == "" {
		log.Fatal("-item is required")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	body := fmt.Sprintf(bodyTemplate, *item, *qty, *price)

	var (
		mu       sync.Mutex
		statuses = make(map[string]int)
	)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*parallel)
	start := time.Now()
	for range *total {
		g.Go(func() error {
			status := doCheckout(ctx, client, *baseURL, body)
			mu.Lock()
			statuses[status]++
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	keys := make([]string, 0, len(statuses))
	for k := range statuses {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("%d checkouts in %s\n", *total, time.Since(start).Round(time.Millisecond))
	for _, k := range keys {
		fmt.Printf("  %-28s %d\n", k, statuses[k])
	}
}

func doCheckout(ctx context.Context, client *http.Client, baseURL, body string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/checkout", bytes.NewBufferString(body))
	if err != nil {
		return "request error"
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "storm-"+uuid.NewString())

	resp, err := client.Do(req)
	if err != nil {
		return "transport error"
	}
	defer resp.Body.Close()
	return resp.Status
}
