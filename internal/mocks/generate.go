package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name RecordSource --dir ../usecase --output usecase --outpkg usecasemock --filename record_source_mock.go
