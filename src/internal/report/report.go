// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/H0llyW00dzZ/tls-version-checker/src/internal/helper/gc"
	tlsprobe "github.com/H0llyW00dzZ/tls-version-checker/src/internal/tls/probe"
	tlssuite "github.com/H0llyW00dzZ/tls-version-checker/src/internal/tls/suite"
)

// Header introduces the text report.
const Header = "Values being used:"

// Field is one labelled report value.
type Field struct {
	Label string
	Value string
}

// Fields returns the available report values in display order.
func Fields(r *tlsprobe.Report) []Field {
	var fields []Field
	add := func(label, value string) {
		if value != "" {
			fields = append(fields, Field{Label: label, Value: value})
		}
	}

	suite := r.CipherSuite
	if suite != "" && r.CipherSuiteID != 0 && !strings.HasPrefix(suite, "0x") {
		suite += " (" + tlssuite.IDString(r.CipherSuiteID) + ")"
	}
	add("Negotiated Cipher Suite", suite)
	add("Cipher", r.Cipher)
	if r.CipherStrength > 0 {
		add("Cipher strength", strconv.Itoa(r.CipherStrength))
	}
	add("Hash Algorithm", r.Hash)
	add("Key Exchange Algorithm", r.KeyExchange)
	add("SSL/TLS Protocol version", r.Protocol)
	return fields
}

// Text renders the report as "Label: value" lines under [Header].
func Text(r *tlsprobe.Report) string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.WriteString(Header)
	buf.WriteByte('\n')
	for _, f := range Fields(r) {
		buf.WriteString(f.Label)
		buf.WriteString(": ")
		buf.WriteString(f.Value)
		buf.WriteByte('\n')
	}
	return buf.String()
}

// Table renders the report as a markdown table.
func Table(r *tlsprobe.Report) string {
	var sb strings.Builder
	table := tablewriter.NewTable(&sb,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Parameter", "Value"})

	var rows [][]string
	for _, f := range Fields(r) {
		rows = append(rows, []string{f.Label, f.Value})
	}

	table.Bulk(rows)
	table.Render()
	return sb.String()
}
