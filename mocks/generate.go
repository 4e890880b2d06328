package mocks

//go:generate mockgen -destination=./mock_client.go -package=mocks github.com/rxtech-lab/argo-market-strategy/internal/trading Client
//go:generate mockgen -destination=./mock_stream.go -package=mocks github.com/rxtech-lab/argo-market-strategy/internal/trading Stream
//go:generate mockgen -destination=./mock_gateway.go -package=mocks github.com/rxtech-lab/argo-market-strategy/internal/trading Gateway
//go:generate mockgen -destination=./mock_handler.go -package=mocks github.com/rxtech-lab/argo-market-strategy/pkg/strategy Handler
//go:generate mockgen -destination=./mock_clock.go -package=mocks github.com/rxtech-lab/argo-market-strategy/internal/clock Clock
