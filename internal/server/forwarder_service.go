package server

import "github.com/joeblew999/plat-fonts/pkg/delivery"

// forwarderService adapts delivery.Engine to the service.Service interface.
type forwarderService struct {
	engine  *delivery.Engine
	workers int
}

func newForwarderService(engine *delivery.Engine, workers int) *forwarderService {
	return &forwarderService{engine: engine, workers: workers}
}

func (s *forwarderService) Start() {
	s.engine.Start(s.workers)
}

func (s *forwarderService) Stop() {
	s.engine.Stop()
}
