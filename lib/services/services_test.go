// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package services

import (
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/PolymeshAssociation/Polymesh-sub002/internal/log"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type otherService struct {
	*MockService
}

func newDiscardLogger() Logger {
	return log.New(log.SetWriter(io.Discard))
}

func TestServiceRegistry_RegisterService(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	logger := NewMockLogger(ctrl)
	r := NewServiceRegistry(logger)

	first := NewMockService(ctrl)
	second := NewMockService(ctrl)
	logger.EXPECT().Warnf("Tried to add service type %s that has already been seen", reflect.TypeOf(second))

	r.RegisterService(first)
	r.RegisterService(second)

	assert.Len(t, r.services, 1)
	assert.Same(t, first, r.services[reflect.TypeOf(first)])
}

func TestServiceRegistry_StartStopAll(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	r := NewServiceRegistry(newDiscardLogger())

	first := NewMockService(ctrl)
	second := otherService{NewMockService(ctrl)}
	r.RegisterService(first)
	r.RegisterService(second)

	gomock.InOrder(
		first.EXPECT().Start().Return(nil),
		second.EXPECT().Start().Return(nil),
		second.EXPECT().Stop().Return(nil),
		first.EXPECT().Stop().Return(errors.New("test error")),
	)

	err := r.StartAll()
	require.NoError(t, err)

	r.StopAll()
	assert.Zero(t, r.started)
}

func TestServiceRegistry_StartAll_failure(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	r := NewServiceRegistry(newDiscardLogger())

	first := NewMockService(ctrl)
	second := otherService{NewMockService(ctrl)}
	r.RegisterService(first)
	r.RegisterService(second)

	errTest := errors.New("test error")
	gomock.InOrder(
		first.EXPECT().Start().Return(nil),
		second.EXPECT().Start().Return(errTest),
		first.EXPECT().Stop().Return(nil),
	)

	err := r.StartAll()
	require.ErrorIs(t, err, errTest)
	assert.Zero(t, r.started)
}

func TestServiceRegistry_Get(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	r := NewServiceRegistry(newDiscardLogger())

	a := NewMockService(ctrl)
	r.RegisterService(a)

	assert.Same(t, a, r.Get(a))
	assert.Nil(t, r.Get(struct{}{}))
	assert.Nil(t, r.Get(&otherService{}))
}
