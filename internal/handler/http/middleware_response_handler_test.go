// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

func TestResponseWriter_InitialState(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	assert.Zero(t, w.status)
	assert.Zero(t, w.size)
	assert.False(t, w.wroteHeader)
}

func TestResponseWriter_WriteHeader_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		statuses   []int
		wantStatus int
	}{
		{name: "single 200", statuses: []int{http.StatusOK}, wantStatus: http.StatusOK},
		{name: "single 404", statuses: []int{http.StatusNotFound}, wantStatus: http.StatusNotFound},
		{name: "second call ignored", statuses: []int{http.StatusCreated, http.StatusInternalServerError}, wantStatus: http.StatusCreated},
		{name: "429 then 200", statuses: []int{http.StatusTooManyRequests, http.StatusOK}, wantStatus: http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			for _, status := range tt.statuses {
				w.WriteHeader(status)
			}

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.True(t, w.wroteHeader)
		})
	}
}

func TestResponseWriter_Write_SetsImplicit200(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	n, err := w.Write([]byte("hello"))

	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestResponseWriter_Write_AccumulatesSize(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	_, _ = w.Write([]byte("first"))
	_, _ = w.Write([]byte("second"))

	assert.Equal(t, len("first")+len("second"), w.size)
	assert.Equal(t, "firstsecond", rr.Body.String())
}

func TestResponseWriter_Write_AfterExplicitWriteHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write([]byte(`{"id":1}`))

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_ProxiesHeadersAndUnwraps(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.Header().Set("Content-Type", "application/json")

	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Same(t, rr, w.Unwrap())
}
