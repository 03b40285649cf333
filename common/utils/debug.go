package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

type Context map[string]interface{}

type Message struct {
	Time    string  `json:"time"`
	Service string  `json:"service"`
	Message string  `json:"message"`
	Context Context `json:"context"`
}

var debugOutput io.Writer = os.Stdout

var hostname = func() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}()

func Debug(service string, message string) {
	DebugWith(service, message, nil)
}

// DebugWith prints one JSON line carrying message and the given context,
// plus the hostname.
func DebugWith(service string, message string, ctx Context) {
	context := make(Context, len(ctx)+1)
	for k, v := range ctx {
		context[k] = v
	}

	context["hostname"] = hostname

	messageStruct := Message{
		Time:    time.Now().UTC().Format(time.RFC3339Nano),
		Service: service,
		Message: message,
		Context: context,
	}

	data, _ := json.Marshal(messageStruct)

	fmt.Fprintln(debugOutput, string(data))
}
