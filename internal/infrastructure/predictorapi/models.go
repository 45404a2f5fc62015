package predictorapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Winmix713/hekoprot2/internal/domain"
	"github.com/Winmix713/hekoprot2/internal/domain/mlmodel"
)

func (c *Client) ListModels(ctx context.Context, filter mlmodel.Filter) (mlmodel.List, error) {
	var out mlmodel.List
	err := c.call(ctx, "predictorapi.Client.ListModels", Request{
		Path:  "/models",
		Query: filter.Values(),
	}, &out)
	return out, err
}

func (c *Client) GetModel(ctx context.Context, modelID string) (mlmodel.Model, error) {
	var out mlmodel.Model
	err := c.call(ctx, "predictorapi.Client.GetModel", Request{
		Path: "/models/" + url.PathEscape(modelID),
	}, &out)
	return out, err
}

// TrainModel starts a training run. An empty request is sent without a body.
func (c *Client) TrainModel(ctx context.Context, modelID string, req mlmodel.TrainRequest) (domain.Document, error) {
	var body any
	if len(req.TrainingConfig) > 0 || len(req.TrainingDataConfig) > 0 {
		body = req
	}

	var out domain.Document
	err := c.call(ctx, "predictorapi.Client.TrainModel", Request{
		Method: http.MethodPost,
		Path:   "/models/" + url.PathEscape(modelID) + "/train",
		Body:   body,
	}, &out)
	return out, err
}

func (c *Client) GetModelPerformance(ctx context.Context, modelID string) (domain.Document, error) {
	var out domain.Document
	err := c.call(ctx, "predictorapi.Client.GetModelPerformance", Request{
		Path: "/models/" + url.PathEscape(modelID) + "/performance",
	}, &out)
	return out, err
}
