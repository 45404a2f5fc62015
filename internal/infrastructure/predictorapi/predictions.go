package predictorapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Winmix713/hekoprot2/internal/domain/prediction"
)

func (c *Client) ListPredictions(ctx context.Context, filter prediction.Filter) (prediction.List, error) {
	var out prediction.List
	err := c.call(ctx, "predictorapi.Client.ListPredictions", Request{
		Path:  "/predictions",
		Query: filter.Values(),
	}, &out)
	return out, err
}

func (c *Client) GetPrediction(ctx context.Context, predictionID string) (prediction.Prediction, error) {
	var out prediction.Prediction
	err := c.call(ctx, "predictorapi.Client.GetPrediction", Request{
		Path: "/predictions/" + url.PathEscape(predictionID),
	}, &out)
	return out, err
}

func (c *Client) CreatePrediction(ctx context.Context, input prediction.CreateInput) (prediction.Prediction, error) {
	var out prediction.Prediction
	err := c.call(ctx, "predictorapi.Client.CreatePrediction", Request{
		Method: http.MethodPost,
		Path:   "/predictions",
		Body:   input,
	}, &out)
	return out, err
}
