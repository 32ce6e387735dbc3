// Package twiml builds Twilio voice response documents.
//
// Only the four verbs this service emits are modeled: Say, Play, Gather and
// Redirect. Verbs render in the order they are added, which is significant
// to Twilio (e.g. Play before Redirect).
package twiml

import (
	"encoding/xml"
	"fmt"
)

// Say represents a TwiML <Say> element.
type Say struct {
	XMLName xml.Name `xml:"Say"`
	Text    string   `xml:",chardata"`
}

// Play represents a TwiML <Play> element pointing at a playback URL.
type Play struct {
	XMLName xml.Name `xml:"Play"`
	URL     string   `xml:",chardata"`
}

// Gather represents a TwiML <Gather> element that opens a speech-capture
// window and posts the transcript to the action path.
type Gather struct {
	XMLName       xml.Name `xml:"Gather"`
	Input         string   `xml:"input,attr"`
	Action        string   `xml:"action,attr"`
	SpeechTimeout string   `xml:"speechTimeout,attr"`
}

// Redirect represents a TwiML <Redirect> element.
type Redirect struct {
	XMLName xml.Name `xml:"Redirect"`
	URL     string   `xml:",chardata"`
}

// Response represents a TwiML <Response> document.
type Response struct {
	XMLName xml.Name `xml:"Response"`
	Verbs   []interface{}
}

// NewResponse creates an empty voice response.
func NewResponse() *Response {
	return &Response{}
}

// Say appends a <Say> verb.
func (r *Response) Say(text string) *Response {
	r.Verbs = append(r.Verbs, Say{Text: text})
	return r
}

// Play appends a <Play> verb.
func (r *Response) Play(url string) *Response {
	r.Verbs = append(r.Verbs, Play{URL: url})
	return r
}

// GatherSpeech appends a <Gather> verb capturing speech with automatic
// end-of-speech detection, posting the transcript to action.
func (r *Response) GatherSpeech(action string) *Response {
	r.Verbs = append(r.Verbs, Gather{
		Input:         "speech",
		Action:        action,
		SpeechTimeout: "auto",
	})
	return r
}

// Redirect appends a <Redirect> verb.
func (r *Response) Redirect(url string) *Response {
	r.Verbs = append(r.Verbs, Redirect{URL: url})
	return r
}

// Render serializes the response as a TwiML document.
func (r *Response) Render() (string, error) {
	xmlBytes, err := xml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to marshal twiml: %w", err)
	}
	return xml.Header + string(xmlBytes), nil
}
