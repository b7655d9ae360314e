// Package caption turns raw cue blocks into inline WebVTT subtitle resources.
//
// A raw block is a sequence of cues separated by blank lines, each cue being a
// "start --> end" timing line followed by one or more text lines. Build wraps
// the block verbatim with the WEBVTT header and encodes it as a data URI, so
// the result can be attached to a media element without a separate request.
package caption

import (
	"fmt"
	"net/url"
	"strings"
)

// MIMEType of the built subtitle resource
const MIMEType = "text/vtt"

const (
	header         = "WEBVTT"
	resourcePrefix = "data:" + MIMEType + ";charset=utf-8,"
)

// DefaultCues is used for items without their own captions
const DefaultCues = "00:00.000 --> 00:03.000\nThis video explains core concepts.\n\n" +
	"00:03.200 --> 00:07.200\nPay attention to the definition and examples."

// Track is a built subtitle resource
type Track struct {
	Resource string `json:"resource"` // inline data URI
	Cues     string `json:"cues"`     // raw cue block the resource was built from
}

// Build makes a track from the raw cue block, empty block falls back to DefaultCues.
// The same input always produces the same resource.
func Build(raw string) Track {
	if strings.TrimSpace(raw) == "" {
		raw = DefaultCues
	}
	return Track{Resource: resourcePrefix + url.PathEscape(document(raw)), Cues: raw}
}

// Decode returns the WebVTT document carried by a resource made by Build
func Decode(resource string) (string, error) {
	payload, ok := strings.CutPrefix(resource, resourcePrefix)
	if !ok {
		return "", fmt.Errorf("not a %s data resource", MIMEType)
	}
	doc, err := url.PathUnescape(payload)
	if err != nil {
		return "", fmt.Errorf("unescape resource: %w", err)
	}
	return doc, nil
}

func document(raw string) string {
	return header + "\n\n" + raw
}
