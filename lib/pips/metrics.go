// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pips

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	activeGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "polymesh_pips",
		Name:      "active_total",
		Help:      "number of pending or scheduled proposals",
	})
	liveQueueGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "polymesh_pips",
		Name:      "live_queue_length",
		Help:      "number of proposals in the live priority queue",
	})
)
