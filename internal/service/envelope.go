package service

import (
	"encoding/json"

	"github.com/go-resty/resty/v2"
	"github.com/ndtruong/vango-client/internal/app"
	"github.com/ndtruong/vango-client/internal/gateway"
	"github.com/ndtruong/vango-client/models"
)

// decodeEnvelope unmarshals a successful response into the standard
// {success,message,data} wrapper. A body that cannot be decoded still
// surfaces as the normalized error shape so callers see one contract.
func decodeEnvelope[T any](resp *resty.Response) (*models.Envelope[T], error) {
	var env models.Envelope[T]
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, &gateway.APIError{Message: app.MsgSomethingWentWrong, Detail: "decode response envelope: " + err.Error()}
	}
	return &env, nil
}

// decodeResult unmarshals a successful Result-style response
// ({value,isSuccess,isFailure,error}).
func decodeResult[T any](resp *resty.Response) (*models.Result[T], error) {
	var res models.Result[T]
	if err := json.Unmarshal(resp.Body(), &res); err != nil {
		return nil, &gateway.APIError{Message: app.MsgSomethingWentWrong, Detail: "decode result response: " + err.Error()}
	}
	return &res, nil
}
