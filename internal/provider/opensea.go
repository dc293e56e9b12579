package provider

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"coinlens/internal/domain"
	"coinlens/internal/fetch"

	"go.opentelemetry.io/otel/trace"
)

const openSeaBaseURL = "https://api.opensea.io/api/v2"

// OpenSeaProvider lists NFTs held by a wallet via the OpenSea v2 API.
type OpenSeaProvider struct {
	fetcher *fetch.Fetcher
	baseURL string
	apiKey  string
	tracer  trace.Tracer
}

func NewOpenSeaProvider(tracer trace.Tracer, apiKey string) *OpenSeaProvider {
	return &OpenSeaProvider{
		fetcher: fetch.New(nil),
		baseURL: openSeaBaseURL,
		apiKey:  apiKey,
		tracer:  tracer,
	}
}

// NFTs returns the assets owned by wallet on the given chain. Without an
// API key OpenSea rejects every call, so the provider short-circuits.
func (p *OpenSeaProvider) NFTs(ctx context.Context, wallet, chain string) []domain.NFTAsset {
	ctx, span := p.tracer.Start(ctx, "opensea.nfts")
	defer span.End()

	if p.apiKey == "" {
		log.Println("OpenSea API key missing. Set OPENSEA_API_KEY.")
		return nil
	}

	headers := http.Header{}
	headers.Set("Accept", "application/json")
	headers.Set("X-API-KEY", p.apiKey)

	var raw struct {
		NFTs []struct {
			Identifier    string `json:"identifier"`
			Collection    string `json:"collection"`
			Contract      string `json:"contract"`
			TokenStandard string `json:"token_standard"`
			Name          string `json:"name"`
			Description   string `json:"description"`
			ImageURL      string `json:"image_url"`
			OpenSeaURL    string `json:"opensea_url"`
		} `json:"nfts"`
	}
	endpoint := fmt.Sprintf("%s/chain/%s/account/%s/nfts", p.baseURL, chain, wallet)
	if !p.fetcher.GetJSON(ctx, endpoint, nil, headers, &raw) {
		return nil
	}

	assets := make([]domain.NFTAsset, 0, len(raw.NFTs))
	for _, n := range raw.NFTs {
		assets = append(assets, domain.NFTAsset{
			Identifier:    n.Identifier,
			Collection:    n.Collection,
			Contract:      n.Contract,
			TokenStandard: n.TokenStandard,
			Name:          n.Name,
			Description:   n.Description,
			ImageURL:      n.ImageURL,
			OpenSeaURL:    n.OpenSeaURL,
		})
	}
	return assets
}
