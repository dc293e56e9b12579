package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"coinlens/internal/domain"
	"coinlens/internal/service"
)

func TestGetNews(t *testing.T) {
	feeds := &stubFeeds{articles: []domain.Article{
		{Title: "Bitcoin rallies", SourceDomain: "coindesk.com"},
	}}
	r := newTestRouter(t, service.Providers{Feeds: feeds}, nil)

	w := get(r, "/api/news?limit=5")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if feeds.lastLimit != 5 {
		t.Fatalf("expected limit 5 upstream, got %d", feeds.lastLimit)
	}

	var body struct {
		Articles []domain.Article `json:"articles"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(body.Articles) != 1 || body.Articles[0].Title != "Bitcoin rallies" {
		t.Fatalf("unexpected payload: %+v", body)
	}
}

func TestGetNewsIgnoresBadLimit(t *testing.T) {
	feeds := &stubFeeds{}
	r := newTestRouter(t, service.Providers{Feeds: feeds}, nil)

	w := get(r, "/api/news?limit=500")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if feeds.lastLimit != 20 {
		t.Fatalf("expected default limit 20, got %d", feeds.lastLimit)
	}
}

func TestGetPosts(t *testing.T) {
	posts := &stubPosts{posts: []domain.NewsPost{{Title: "ETH upgrade ships"}}}
	r := newTestRouter(t, service.Providers{Posts: posts}, nil)

	w := get(r, "/api/posts?filter=rising&currencies=ETH,SOL")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if posts.lastFilter != "rising" || posts.lastCurrencies != "ETH,SOL" {
		t.Fatalf("unexpected upstream args: %s/%s", posts.lastFilter, posts.lastCurrencies)
	}
}

func TestGetPostsDefaults(t *testing.T) {
	posts := &stubPosts{}
	r := newTestRouter(t, service.Providers{Posts: posts}, nil)

	w := get(r, "/api/posts")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if posts.lastFilter != "news" || posts.lastCurrencies != "BTC" {
		t.Fatalf("unexpected defaults: %s/%s", posts.lastFilter, posts.lastCurrencies)
	}
}

func TestGetNFTs(t *testing.T) {
	nfts := &stubNFTs{assets: []domain.NFTAsset{{Identifier: "42", Collection: "punks"}}}
	r := newTestRouter(t, service.Providers{NFTs: nfts}, nil)

	w := get(r, "/api/nfts/0xabc?chain=polygon")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if nfts.lastWallet != "0xabc" || nfts.lastChain != "polygon" {
		t.Fatalf("unexpected upstream args: %s/%s", nfts.lastWallet, nfts.lastChain)
	}

	var body struct {
		NFTs []domain.NFTAsset `json:"nfts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(body.NFTs) != 1 || body.NFTs[0].Collection != "punks" {
		t.Fatalf("unexpected payload: %+v", body)
	}
}

func TestGetNFTsDefaultChain(t *testing.T) {
	nfts := &stubNFTs{}
	r := newTestRouter(t, service.Providers{NFTs: nfts}, nil)

	if w := get(r, "/api/nfts/0xabc"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if nfts.lastChain != "ethereum" {
		t.Fatalf("expected ethereum default, got %q", nfts.lastChain)
	}
}

func TestGetSentiment(t *testing.T) {
	sentiment := &stubSentiment{reading: domain.SentimentReading{Value: 71, Classification: "Greed"}}
	r := newTestRouter(t, service.Providers{Sentiment: sentiment}, nil)

	w := get(r, "/api/sentiment")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body domain.SentimentReading
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if body.Value != 71 || body.Classification != "Greed" {
		t.Fatalf("unexpected payload: %+v", body)
	}
}
