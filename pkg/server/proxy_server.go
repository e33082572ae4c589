package server

import (
	"github.com/NeuralTrust/RiskGate/pkg/config"
	handlers "github.com/NeuralTrust/RiskGate/pkg/handlers/http"
	"github.com/NeuralTrust/RiskGate/pkg/middleware"
	"github.com/NeuralTrust/RiskGate/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	ProxyServerDI struct {
		Config              *config.Config
		Logger              *logrus.Logger
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
	}
	ProxyServer struct {
		*BaseServer
	}
)

func NewProxyServer(di ProxyServerDI) *ProxyServer {
	s := &ProxyServer{
		BaseServer: NewBaseServer(di.Config, di.Logger),
	}
	s.WithRouters(router.NewProxyRouter(&di.MiddlewareTransport, di.HandlerTransport))
	return s
}

func (s *ProxyServer) Run() error {
	s.setupMetricsEndpoint()
	return s.listen(s.Config.Server.ProxyPort, "proxy")
}
