package tools

import (
	"html/template"
	"io"

	"github.com/Comcast/kmpviz/core"
	"github.com/Comcast/kmpviz/diagram"

	md "github.com/russross/blackfriday/v2"
)

// DefaultAbout is the markdown shown under the diagram.
var DefaultAbout = `
Type a **pattern**, then feed the automaton one character at a time.

Red states are *alive*: the first *i* characters of the pattern match
the last *i* characters typed.  State 0 is always alive because
matching can always start over (the Σ loop).  The double circle is the
accepting state.

This automaton tracks every partial match at once.  It isn't the
minimal KMP automaton, so a pattern like ` + "`aaa`" + ` can have
several alive states.
`

// PageOpts controls RenderPage.
type PageOpts struct {
	// Title is the page title.
	Title string

	// Pattern is the initial pattern.
	Pattern string

	// Width is the width used for the initial, server-side
	// render.  The browser sends its own width afterwards.
	Width float64

	// About is markdown rendered under the diagram.
	About string

	// CSSFiles are stylesheet URLs.
	CSSFiles []string

	// WSPath is the path for the websocket API.
	WSPath string
}

type pageData struct {
	*PageOpts
	SVG   template.HTML
	About template.HTML
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{range .CSSFiles}}<link href="{{.}}" rel="stylesheet">
{{end}}<style>
body { margin: 2em; font-family: sans-serif }
#controls input { font-size: 1.2em; margin-right: 1em }
#input-char { width: 2em }
.about { max-width: 40em }
</style>
<script>
window.addEventListener("load", function(evt) {
    var pattern = document.getElementById("pattern");
    var input = document.getElementById("input-char");
    var wrapper = document.getElementById("automaton");
    var scheme = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(scheme + location.host + "{{.WSPath}}");

    var send = function(op) {
        op.width = document.documentElement.clientWidth;
        ws.send(JSON.stringify(op));
    };

    ws.onmessage = function(evt) {
        var reply = JSON.parse(evt.data);
        if (reply.err) {
            console.log("error", reply.err);
            return;
        }
        wrapper.innerHTML = reply.svg;
    };

    ws.onopen = function(evt) {
        send({pattern: pattern.value});
    };

    pattern.addEventListener("input", function(evt) {
        send({pattern: pattern.value});
    });

    input.addEventListener("input", function(evt) {
        var c = input.value;
        input.value = "";
        send({input: c});
    });
});
</script>
</head>
<body>
<div id="controls">
<label>pattern <input id="pattern" type="text" value="{{.Pattern}}"></label>
<label>input <input id="input-char" type="text"></label>
</div>
<div id="automaton">{{.SVG}}</div>
<div class="about">{{.About}}</div>
</body>
</html>
`))

// RenderPage writes the interactive page.
//
// The page includes an initial rendering of the automaton for
// opts.Pattern so that there's something to look at before the
// websocket connects.
func RenderPage(out io.Writer, opts *PageOpts) error {
	if opts.Title == "" {
		opts.Title = "kmpviz"
	}
	if opts.WSPath == "" {
		opts.WSPath = "/ws/api"
	}
	if opts.About == "" {
		opts.About = DefaultAbout
	}

	svg, err := diagram.SVGString(core.NewTracker(opts.Pattern), opts.Width)
	if err != nil {
		return err
	}

	return pageTemplate.Execute(out, &pageData{
		PageOpts: opts,
		SVG:      template.HTML(svg),
		About:    template.HTML(md.Run([]byte(opts.About))),
	})
}
