package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Store --dir ../infrastructure/session --output session --outpkg sessionmock --filename store_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name PredictorAPI --dir ../usecase --output usecase --outpkg usecasemock --filename predictor_api_mock.go
