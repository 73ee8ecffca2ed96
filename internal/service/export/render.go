package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"

	"gopkg.in/yaml.v3"
)

type deliveriesXML struct {
	XMLName xml.Name           `xml:"deliveries"`
	Items   []shipmentDocument `xml:"delivery"`
}

type usersXML struct {
	XMLName xml.Name       `xml:"users"`
	Items   []userDocument `xml:"user"`
}

func renderJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("render json: %w", err)
	}
	return buf.Bytes(), nil
}

func renderYAML(v interface{}) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("render yaml: %w", err)
	}
	return data, nil
}

func renderXML(v interface{}) ([]byte, error) {
	data, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render xml: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(data)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func renderCSV(header []string, records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("render csv: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}
	return buf.Bytes(), nil
}
