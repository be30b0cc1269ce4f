// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package services

import (
	"fmt"
	"reflect"
)

// Service must be implemented by all Services
type Service interface {
	Start() error
	Stop() error
}

// ServiceRegistry is a structure to manage core system Services
type ServiceRegistry struct {
	services     map[reflect.Type]Service // map of types to service instances
	serviceTypes []reflect.Type           // all known service types, in registration order
	started      int                      // number of services started
	logger       Logger
}

// NewServiceRegistry creates an empty registry
func NewServiceRegistry(logger Logger) *ServiceRegistry {
	return &ServiceRegistry{
		services: make(map[reflect.Type]Service),
		logger:   logger,
	}
}

// RegisterService stores a new service in the map. If a service of that type has been seen
// it is ignored.
func (s *ServiceRegistry) RegisterService(service Service) {
	kind := reflect.TypeOf(service)
	if _, exists := s.services[kind]; exists {
		s.logger.Warnf("Tried to add service type %s that has already been seen", kind)
		return
	}
	s.services[kind] = service
	s.serviceTypes = append(s.serviceTypes, kind)
}

// StartAll starts the services in registration order. On the first
// failure, the services already started are stopped and the error is
// returned.
func (s *ServiceRegistry) StartAll() error {
	s.logger.Infof("Starting Services: %v", s.serviceTypes)
	for _, typ := range s.serviceTypes {
		s.logger.Debugf("Starting service %s", typ)
		err := s.services[typ].Start()
		if err != nil {
			s.StopAll()
			return fmt.Errorf("starting service %s: %w", typ, err)
		}
		s.started++
	}
	s.logger.Debug("All Services started.")
	return nil
}

// StopAll stops the services started, in reverse order.
func (s *ServiceRegistry) StopAll() {
	s.logger.Infof("Stopping Services: %v", s.serviceTypes[:s.started])
	for ; s.started > 0; s.started-- {
		typ := s.serviceTypes[s.started-1]
		s.logger.Debugf("Stopping service %s", typ)
		err := s.services[typ].Stop()
		if err != nil {
			s.logger.Errorf("Error stopping service %s: %s", typ, err)
		}
	}
	s.logger.Debug("All Services stopped.")
}

// Get retrieves the service registered with the type of srvc.
func (s *ServiceRegistry) Get(srvc interface{}) Service {
	if reflect.TypeOf(srvc).Kind() != reflect.Ptr {
		s.logger.Warnf("expected a pointer but got %T", srvc)
		return nil
	}

	if service, ok := s.services[reflect.TypeOf(srvc)]; ok {
		return service
	}
	s.logger.Warnf("unknown service type %T", srvc)
	return nil
}
