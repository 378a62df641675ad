package events

import (
	"encoding/base64"
	"errors"
	"testing"
)

func TestDecodeTransportRoundTrip(t *testing.T) {
	original := Message{
		BagID:      "BAG-001",
		Status:     "IN_TRANSIT",
		Payload:    []byte(`{"location":"Departed collection site"}`),
		ReportedBy: "0.0.2001",
		Ts:         1700000000000,
	}
	text, err := original.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := DecodeTransport(base64.StdEncoding.EncodeToString(text))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.BagID != original.BagID || decoded.Status != original.Status {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
	if decoded.Ts != original.Ts || decoded.ReportedBy != original.ReportedBy {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
}

func TestDecodeJSONRejectsMissingBagID(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"status":"CREATED","ts":1}`))
	if !errors.Is(err, ErrMalformedMessage) {
		t.Fatalf("expected ErrMalformedMessage, got %v", err)
	}
}

func TestDecodeTransportRejectsGarbage(t *testing.T) {
	if _, err := DecodeTransport("not base64!!"); !errors.Is(err, ErrMalformedMessage) {
		t.Fatalf("expected ErrMalformedMessage for bad framing, got %v", err)
	}
	if _, err := DecodeTransport(base64.StdEncoding.EncodeToString([]byte("plain text"))); !errors.Is(err, ErrMalformedMessage) {
		t.Fatalf("expected ErrMalformedMessage for non-JSON body, got %v", err)
	}
}
