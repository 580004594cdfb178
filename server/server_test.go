// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herczegzsolt/p256verify/asn1sig"
	"github.com/herczegzsolt/p256verify/internal/obslog"
	"github.com/herczegzsolt/p256verify/internal/obsmetrics"
	"github.com/herczegzsolt/p256verify/server"
)

var (
	scenarioH  = mustHex("bb5a52f42f9c9261ed4361f59422a1e30036e7c32b270c8807a419feca605023")
	scenarioR  = mustDecimal("19738613187745101558623338726804762177711919211234071563652772152683725073944")
	scenarioS  = mustDecimal("34753961278895633991577816754222591531863837041401341770838584739693604822390")
	scenarioQx = mustDecimal("18614955573315897657680976650685450080931919913269223958732452353593824192568")
	scenarioQy = mustDecimal("90223116347859880166570198725387569567414254547569925327988539833150573990206")
)

func mustDecimal(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad decimal literal: " + s)
	}
	return v
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func newTestHandler(t *testing.T) *server.Handler {
	t.Helper()
	logger, err := obslog.New("test", "error", false)
	require.NoError(t, err)
	metrics := obsmetrics.New(prometheus.NewRegistry())
	return server.NewHandler(logger, metrics)
}

func validRequestBody(t *testing.T) []byte {
	t.Helper()
	der, err := asn1sig.EncodeSignature(scenarioR, scenarioS)
	require.NoError(t, err)

	pub := make([]byte, 65)
	pub[0] = 0x04
	scenarioQx.FillBytes(pub[1:33])
	scenarioQy.FillBytes(pub[33:65])

	body, err := json.Marshal(server.VerifyRequest{
		Hash:      hex.EncodeToString(scenarioH),
		Signature: hex.EncodeToString(der),
		PublicKey: hex.EncodeToString(pub),
	})
	require.NoError(t, err)
	return body
}

func TestServeVerifyValidSignature(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodPost, server.URLBaseV1, bytes.NewReader(validRequestBody(t)))
	resp := httptest.NewRecorder()

	h.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	var out server.VerifyResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.True(t, out.Valid)
}

func TestServeVerifyTamperedSignature(t *testing.T) {
	h := newTestHandler(t)

	tampered := new(big.Int).Xor(scenarioS, big.NewInt(1))
	der, err := asn1sig.EncodeSignature(scenarioR, tampered)
	require.NoError(t, err)
	pub := make([]byte, 65)
	pub[0] = 0x04
	scenarioQx.FillBytes(pub[1:33])
	scenarioQy.FillBytes(pub[33:65])
	body, err := json.Marshal(server.VerifyRequest{
		Hash:      hex.EncodeToString(scenarioH),
		Signature: hex.EncodeToString(der),
		PublicKey: hex.EncodeToString(pub),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, server.URLBaseV1, bytes.NewReader(body))
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	var out server.VerifyResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.False(t, out.Valid)
}

func TestServeVerifyMalformedHex(t *testing.T) {
	h := newTestHandler(t)
	body, err := json.Marshal(server.VerifyRequest{
		Hash:      "not-hex",
		Signature: "30",
		PublicKey: "04",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, server.URLBaseV1, bytes.NewReader(body))
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	var out server.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.NotEmpty(t, out.Error)
}

func TestServeVerifyInvalidMethod(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, server.URLBaseV1, nil)
	resp := httptest.NewRecorder()

	h.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
	assert.Equal(t, http.MethodPost, resp.Header().Get("Allow"))
}
