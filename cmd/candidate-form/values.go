package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-candidateform/pkg/form"
)

// readValues decodes a YAML values file. Unknown keys are rejected so typos
// do not silently leave a field empty.
func readValues(path string) (form.Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return form.Values{}, fmt.Errorf("values: read %s: %w", path, err)
	}

	var values form.Values
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return form.Values{}, fmt.Errorf("values: parse %s: %w", path, err)
	}
	return values, nil
}
