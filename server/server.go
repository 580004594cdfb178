// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package server exposes signature verification over HTTP: a JSON request
// carrying the hash, signature, and public key, answered with a JSON
// boolean result. It follows the same router-plus-JSON-error-response
// shape used elsewhere in the calling surface for administrative APIs.
package server

import (
	"encoding/json"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/herczegzsolt/p256verify/asn1sig"
	"github.com/herczegzsolt/p256verify/internal/obslog"
	"github.com/herczegzsolt/p256verify/internal/obsmetrics"
)

const URLBaseV1 = "/v1/verify"

// VerifyRequest is the JSON request body for a verification call. Hash and
// Signature are hex-encoded; Signature is a DER ECDSA-Sig-Value; PublicKey
// is a hex-encoded SEC1 point (uncompressed, compressed, or the single
// infinity byte).
type VerifyRequest struct {
	Hash      string `json:"hash"`
	Signature string `json:"signature"`
	PublicKey string `json:"public_key"`
}

// VerifyResponse is the JSON response body for a verification call.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// ErrorResponse is the JSON body returned on any request error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler serves the verification HTTP API.
type Handler struct {
	logger  *obslog.Logger
	metrics *obsmetrics.Metrics
	router  *mux.Router
}

// NewHandler builds a Handler with its routes registered.
func NewHandler(logger *obslog.Logger, metrics *obsmetrics.Metrics) *Handler {
	h := &Handler{
		logger:  logger.Named("server"),
		metrics: metrics,
		router:  mux.NewRouter(),
	}

	h.router.HandleFunc(URLBaseV1, h.serveVerify).Methods(http.MethodPost)
	h.router.HandleFunc(URLBaseV1, h.serveNotAllowed)

	return h
}

func (h *Handler) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	h.router.ServeHTTP(resp, req)
}

func (h *Handler) serveVerify(resp http.ResponseWriter, req *http.Request) {
	start := time.Now()

	var body VerifyRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.sendError(resp, http.StatusBadRequest, errors.Wrap(err, "decoding request body"))
		return
	}

	hash, err := hex.DecodeString(body.Hash)
	if err != nil {
		h.sendError(resp, http.StatusBadRequest, errors.Wrap(err, "decoding hash"))
		return
	}
	sigDER, err := hex.DecodeString(body.Signature)
	if err != nil {
		h.sendError(resp, http.StatusBadRequest, errors.Wrap(err, "decoding signature"))
		return
	}
	pubkey, err := hex.DecodeString(body.PublicKey)
	if err != nil {
		h.sendError(resp, http.StatusBadRequest, errors.Wrap(err, "decoding public key"))
		return
	}

	valid := asn1sig.VerifyDERWithEncodedKey(hash, sigDER, pubkey)
	if h.metrics != nil {
		h.metrics.ObserveVerify(valid, time.Since(start))
	}

	h.sendOK(resp, VerifyResponse{Valid: valid})
}

func (h *Handler) serveNotAllowed(resp http.ResponseWriter, req *http.Request) {
	resp.Header().Set("Allow", http.MethodPost)
	h.sendError(resp, http.StatusMethodNotAllowed, errors.Errorf("invalid request method: %s", req.Method))
}

func (h *Handler) sendError(resp http.ResponseWriter, code int, err error) {
	resp.Header().Set("Content-Type", "application/json")
	resp.WriteHeader(code)
	if encErr := json.NewEncoder(resp).Encode(&ErrorResponse{Error: err.Error()}); encErr != nil {
		h.logger.Errorf("failed to encode error response: %s", encErr)
	}
}

func (h *Handler) sendOK(resp http.ResponseWriter, content interface{}) {
	resp.Header().Set("Content-Type", "application/json")
	resp.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(resp).Encode(content); err != nil {
		h.logger.Errorf("failed to encode response: %s", err)
	}
}
