package domain

import (
	"encoding/json"
	"fmt"
)

// ContentBlockKind discriminates the ContentBlock union.
type ContentBlockKind string

const (
	ContentText         ContentBlockKind = "text"
	ContentImage        ContentBlockKind = "image"
	ContentAudio        ContentBlockKind = "audio"
	ContentResourceLink ContentBlockKind = "resource_link"
	ContentResource     ContentBlockKind = "resource"
)

// ContentBlock represents one piece of content in a prompt, an agent
// message chunk, or a tool call's content list.
//
//	Text | Image | Audio | ResourceLink | Resource(EmbeddedResource) | Other(kind, payload)
//
// The Other variant exists for content kinds this library doesn't know
// about yet; its full JSON payload is preserved verbatim in Raw so a
// decode→encode round-trip never drops fields.
type ContentBlock struct {
	Kind ContentBlockKind

	// Text is set when Kind == ContentText.
	Text string

	// Data/MimeType are set when Kind == ContentImage or ContentAudio.
	// Data is base64-encoded per the wire schema.
	Data     string
	MimeType string

	// URI/Name are set when Kind == ContentResourceLink.
	URI  string
	Name string

	// Resource is set when Kind == ContentResource.
	Resource *EmbeddedResource

	// OtherKind carries the literal "type" string for an unrecognized
	// kind. Raw carries the full original JSON object for that kind,
	// preserved byte-for-byte on re-encode.
	OtherKind string
	Raw       json.RawMessage
}

// EmbeddedResource is the payload of a ContentResource block: either
// inline text or base64-encoded binary, identified by URI.
type EmbeddedResource struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
	Blob     string `json:"blob,omitempty"`
}

// contentBlockJSON mirrors the wire shape; used only by Marshal/Unmarshal.
type contentBlockJSON struct {
	Type     string            `json:"type"`
	Text     string            `json:"text,omitempty"`
	Data     string            `json:"data,omitempty"`
	MimeType string            `json:"mimeType,omitempty"`
	URI      string            `json:"uri,omitempty"`
	Name     string            `json:"name,omitempty"`
	Resource *EmbeddedResource `json:"resource,omitempty"`
}

// MarshalJSON writes the block in whichever shape its Kind requires. For
// ContentBlockKind values this library doesn't recognize, Raw is emitted
// unchanged so unknown content kinds round-trip byte-for-byte.
func (c ContentBlock) MarshalJSON() ([]byte, error) {
	if c.Kind == "" && len(c.Raw) > 0 {
		return c.Raw, nil
	}

	switch c.Kind {
	case ContentText:
		return json.Marshal(contentBlockJSON{Type: string(ContentText), Text: c.Text})
	case ContentImage, ContentAudio:
		return json.Marshal(contentBlockJSON{Type: string(c.Kind), Data: c.Data, MimeType: c.MimeType})
	case ContentResourceLink:
		return json.Marshal(contentBlockJSON{Type: string(ContentResourceLink), URI: c.URI, Name: c.Name, MimeType: c.MimeType})
	case ContentResource:
		return json.Marshal(contentBlockJSON{Type: string(ContentResource), Resource: c.Resource})
	default:
		if len(c.Raw) > 0 {
			return c.Raw, nil
		}
		return nil, fmt.Errorf("domain: content block has unknown kind %q and no raw payload", c.OtherKind)
	}
}

// UnmarshalJSON decodes a content block, preserving the full raw payload
// for any "type" value this version of the library doesn't recognize.
func (c *ContentBlock) UnmarshalJSON(data []byte) error {
	var raw contentBlockJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("domain: unmarshal content block: %w", err)
	}

	switch ContentBlockKind(raw.Type) {
	case ContentText:
		c.Kind = ContentText
		c.Text = raw.Text
	case ContentImage, ContentAudio:
		c.Kind = ContentBlockKind(raw.Type)
		c.Data = raw.Data
		c.MimeType = raw.MimeType
	case ContentResourceLink:
		c.Kind = ContentResourceLink
		c.URI = raw.URI
		c.Name = raw.Name
		c.MimeType = raw.MimeType
	case ContentResource:
		c.Kind = ContentResource
		c.Resource = raw.Resource
	default:
		c.Kind = ""
		c.OtherKind = raw.Type
		c.Raw = append(json.RawMessage(nil), data...)
	}
	return nil
}
