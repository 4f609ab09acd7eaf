package utils

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
)

const (
	ContentTypeJSON = "application/json; charset=utf-8"
	ContentTypeXML  = "application/xml; charset=utf-8"
)

// WriteJSON writes data as a JSON document with statusCode. When data cannot
// be marshaled the client gets a 500 and the marshal error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return writeFailed(w, "JSON", err)
	}
	return writeBody(w, ContentTypeJSON, statusCode, body)
}

// WriteXML writes data as an XML document, prolog included. Transmission
// envelopes travel this way.
func WriteXML(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := xml.Marshal(data)
	if err != nil {
		return writeFailed(w, "XML", err)
	}
	return writeBody(w, ContentTypeXML, statusCode, append([]byte(xml.Header), body...))
}

func writeBody(w http.ResponseWriter, contentType string, statusCode int, body []byte) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)
	return w.Write(body)
}

func writeFailed(w http.ResponseWriter, format string, err error) (int, error) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	return 0, fmt.Errorf("encoding response as %s: %w", format, err)
}
