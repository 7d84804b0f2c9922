// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `make mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/sale_repository.go -destination=sale_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/lot_repository.go -destination=lot_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/services.go -destination=services_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/collaborators.go -destination=collaborators_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/cache.go -destination=cache_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/storage.go -destination=storage_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/database.go -destination=database_mock.go -package=mocks
