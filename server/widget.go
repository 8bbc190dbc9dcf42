/*
 * MIT License
 *
 * Copyright (c) 2026 ZenClock Team
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package server

import (
	"context"
	_ "embed"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

//go:embed widget/pomodoro-timer.html
var widgetDocument string

const (
	// WidgetURI is the fixed identifier the widget document is served at.
	WidgetURI = "ui://widget/pomodoro-timer.html"

	widgetMIMEType = "text/html+skybridge"
)

// registerWidget registers the widget document as a read-only resource. The
// document is opaque to the server and is served verbatim.
func (s *Server) registerWidget() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         WidgetURI,
		Name:        "pomodoro-timer",
		Description: "Pomodoro timer widget markup",
		MIMEType:    widgetMIMEType,
	}, s.handleWidget)
}

func (s *Server) handleWidget(context.Context, *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      WidgetURI,
				MIMEType: widgetMIMEType,
				Text:     widgetDocument,
			},
		},
	}, nil
}
