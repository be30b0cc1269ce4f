// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package scheduler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scheduledCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "polymesh_scheduler",
		Name:      "scheduled_total",
		Help:      "total number of tasks scheduled",
	})
	cancelledCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "polymesh_scheduler",
		Name:      "cancelled_total",
		Help:      "total number of tasks cancelled before dispatch",
	})
	dispatchedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "polymesh_scheduler",
		Name:      "dispatched_total",
		Help:      "total number of tasks dispatched",
	})
	failedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "polymesh_scheduler",
		Name:      "failed_total",
		Help:      "total number of dispatched tasks returning an error",
	})
	agendaGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "polymesh_scheduler",
		Name:      "named_tasks",
		Help:      "number of named tasks waiting to be dispatched",
	})
)
