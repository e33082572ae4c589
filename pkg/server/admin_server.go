package server

import (
	"github.com/NeuralTrust/RiskGate/pkg/config"
	handlers "github.com/NeuralTrust/RiskGate/pkg/handlers/http"
	"github.com/NeuralTrust/RiskGate/pkg/middleware"
	"github.com/NeuralTrust/RiskGate/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	AdminServerDI struct {
		Config              *config.Config
		Logger              *logrus.Logger
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
	}
	AdminServer struct {
		*BaseServer
	}
)

func NewAdminServer(di AdminServerDI) *AdminServer {
	s := &AdminServer{
		BaseServer: NewBaseServer(di.Config, di.Logger),
	}
	s.WithRouters(router.NewAdminRouter(&di.MiddlewareTransport, di.HandlerTransport, di.Config.Server.AdminURL))
	return s
}

func (s *AdminServer) Run() error {
	return s.listen(s.Config.Server.AdminPort, "admin")
}
