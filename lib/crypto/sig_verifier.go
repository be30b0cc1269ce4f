// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package crypto

import (
	"errors"
	"fmt"
	"sync"

	"github.com/PolymeshAssociation/Polymesh-sub002/internal/log"
)

var ErrSignatureVerificationFailed = errors.New("failed to verify signature")

// SigVerifyFunc verifies a signature given a public key and a message.
type SigVerifyFunc func(pubkey, sig, msg []byte) (err error)

// SignatureInfo is a signature to verify.
type SignatureInfo struct {
	PubKey     []byte
	Sign       []byte
	Msg        []byte
	VerifyFunc SigVerifyFunc
}

// SignatureVerifier verifies a batch of signatures in the background.
// Start launches the verification, Add queues signatures and Finish
// waits for the batch to be verified.
type SignatureVerifier struct {
	logger log.LeveledLogger

	mutex   sync.Mutex
	batch   []*SignatureInfo
	started bool
	err     error
	wakeCh  chan struct{}
	closeCh chan struct{}
	done    sync.WaitGroup
}

// NewSignatureVerifier creates a signature verifier.
func NewSignatureVerifier(logger log.LeveledLogger) *SignatureVerifier {
	return &SignatureVerifier{
		logger:  logger,
		wakeCh:  make(chan struct{}, 1),
		closeCh: make(chan struct{}),
	}
}

// Start starts verifying the signatures of the batch.
func (sv *SignatureVerifier) Start() {
	sv.mutex.Lock()
	sv.started = true
	sv.mutex.Unlock()

	sv.done.Add(1)
	go sv.run()
}

func (sv *SignatureVerifier) run() {
	defer sv.done.Done()
	for {
		signature := sv.pop()
		if signature != nil {
			err := signature.VerifyFunc(signature.PubKey, signature.Sign, signature.Msg)
			if err != nil {
				sv.logger.Debugf("signature verification failed for public key 0x%x: %s", signature.PubKey, err)
				sv.invalidate(err)
				return
			}
			continue
		}

		select {
		case <-sv.wakeCh:
		case <-sv.closeCh:
			if sv.empty() {
				return
			}
		}
	}
}

// IsStarted returns true if Start was called since the last reset.
func (sv *SignatureVerifier) IsStarted() bool {
	sv.mutex.Lock()
	defer sv.mutex.Unlock()
	return sv.started
}

// Add queues a signature for verification. It is a no-op once a
// signature of the batch failed verification.
func (sv *SignatureVerifier) Add(s *SignatureInfo) {
	sv.mutex.Lock()
	defer sv.mutex.Unlock()
	if sv.err != nil {
		return
	}
	sv.batch = append(sv.batch, s)

	select {
	case sv.wakeCh <- struct{}{}:
	default:
	}
}

func (sv *SignatureVerifier) pop() *SignatureInfo {
	sv.mutex.Lock()
	defer sv.mutex.Unlock()
	if len(sv.batch) == 0 {
		return nil
	}
	signature := sv.batch[0]
	sv.batch = sv.batch[1:]
	return signature
}

func (sv *SignatureVerifier) empty() bool {
	sv.mutex.Lock()
	defer sv.mutex.Unlock()
	return len(sv.batch) == 0
}

func (sv *SignatureVerifier) invalidate(err error) {
	sv.mutex.Lock()
	defer sv.mutex.Unlock()
	sv.err = err
	sv.batch = nil
}

// Finish waits for the batch to be verified and resets the verifier.
// It returns an error wrapping ErrSignatureVerificationFailed if any
// signature is invalid.
func (sv *SignatureVerifier) Finish() (err error) {
	close(sv.closeCh)
	sv.done.Wait()

	sv.mutex.Lock()
	defer sv.mutex.Unlock()
	err = sv.err
	sv.started = false
	sv.batch = nil
	sv.err = nil
	sv.wakeCh = make(chan struct{}, 1)
	sv.closeCh = make(chan struct{})

	if err != nil {
		return fmt.Errorf("%w: %s", ErrSignatureVerificationFailed, err)
	}
	return nil
}
