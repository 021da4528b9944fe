package site

// layoutTemplate wraps every page. Pages define "content".
const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{if eq .Title .SiteTitle}}{{.SiteTitle}}{{else}}{{.Title}} · {{.SiteTitle}}{{end}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body class="nk-page-{{.Page}}" data-page="{{.Page}}" data-base="{{.Body.Base}}"{{if .Body.Wasm}} data-wasm="{{.Body.Wasm}}"{{end}}
  data-marquee-speed="{{.Body.Speed}}" data-marquee-hover="{{.Body.Hover}}" data-marquee-threshold="{{.Body.Threshold}}"
  data-intro-fade="{{.Body.IntroFade}}" data-intro-duration="{{.Body.IntroEnd}}"{{if .Body.LiveReload}} data-live-reload="true"{{end}}>
  <nav class="nk-nav" id="nk-nav" aria-label="Primary">
    {{range .Nav}}<a id="{{.ID}}" class="nk-nav-link{{if .Sparks}} nk-spark-link{{end}}{{if .Active}} nk-active{{end}}" href="{{.Href}}"{{if .Active}} aria-current="page"{{end}}>
      <span class="nk-nav-label">{{.Label}}</span>{{range .Sparks}}<span class="nk-spark" aria-hidden="true" style="{{.Style}}"></span>{{end}}
    </a>
    {{end}}
  </nav>
  <main class="nk-main">
{{template "content" .}}
  </main>
  <script src="{{.BasePath}}app.js"></script>
</body>
</html>`

// pageTemplates maps a template name to its "content" definition.
var pageTemplates = map[string]string{
	"home":     homeTemplate,
	"concepts": conceptsTemplate,
	"about":    aboutTemplate,
	"contact":  contactTemplate,
	"resume":   resumeTemplate,
	"work":     workTemplate,
	"notfound": notFoundTemplate,
}

const homeTemplate = `{{define "content"}}
    <div class="nk-intro" id="nk-intro" hidden>
      <svg class="nk-intro-art" viewBox="0 0 1200 200" preserveAspectRatio="none" aria-hidden="true">
        <path class="bolt core draw-left" d="M0,100 L200,100 L260,45 L340,165 L425,80 L500,120 L520,100"/>
        <path class="bolt glow draw-left" d="M0,100 L200,100 L260,45 L340,165 L425,80 L500,120 L520,100"/>
        <path class="bolt ghost draw-left delay-40" d="M0,102 L190,102 L255,60 L335,150 L420,90 L495,125 L520,102"/>
        <path class="bolt ghost draw-left delay-80" d="M0,98 L215,98 L270,35 L350,170 L440,75 L510,115 L520,98"/>
        <path class="bolt ghost2 draw-left delay-120" d="M0,101 L180,101 L245,52 L325,162 L410,82 L485,118 L520,101"/>
        <path class="bolt core draw-nk" d="M520,150 L520,50 L570,150 L570,50"/>
        <path class="bolt glow draw-nk" d="M520,150 L520,50 L570,150 L570,50"/>
        <path class="bolt core draw-nk2" d="M610,50 L610,150 M610,100 L670,50 M610,100 L680,150"/>
        <path class="bolt glow draw-nk2" d="M610,50 L610,150 M610,100 L670,50 M610,100 L680,150"/>
        <path class="bolt ghost2 draw-nk2 delay-60 nk-flicker" d="M608,52 L608,148 M608,100 L666,52 M608,100 L676,148"/>
        <path class="bolt core draw-right" d="M700,100 L790,125 L875,45 L960,165 L1040,80 L1120,110 L1200,100"/>
        <path class="bolt glow draw-right" d="M700,100 L790,125 L875,45 L960,165 L1040,80 L1120,110 L1200,100"/>
        <path class="bolt ghost draw-right delay-40" d="M700,102 L785,130 L870,60 L955,150 L1035,90 L1115,115 L1200,102"/>
        <path class="bolt ghost2 draw-right delay-90" d="M700,98 L800,120 L880,40 L970,170 L1045,75 L1130,108 L1200,98"/>
        <path class="spark flash-1" d="M260,45 L240,30 L255,18"/>
        <path class="spark flash-1 delay-60" d="M340,165 L320,182 L330,196"/>
        <path class="spark flash-1 delay-90" d="M425,80 L450,66 L440,48"/>
        <path class="spark flash-1 delay-120" d="M500,120 L525,135 L545,128"/>
        <path class="spark flash-2" d="M570,95 L590,85 L595,70"/>
        <path class="spark flash-2 delay-60" d="M610,120 L635,132 L640,150"/>
        <path class="spark flash-2 delay-90" d="M680,150 L700,162 L712,178"/>
        <path class="spark flash-3" d="M875,45 L855,30 L865,16"/>
        <path class="spark flash-3 delay-70" d="M960,165 L980,182 L970,196"/>
        <path class="spark flash-3 delay-110" d="M1040,80 L1065,66 L1055,48"/>
      </svg>
    </div>
    <section class="nk-hero">
      <h1>{{.Owner}}</h1>
      {{with .Home.Tagline}}<p class="nk-tagline">{{.}}</p>{{end}}
    </section>
    <section class="nk-marquee" id="nk-marquee" aria-label="Projects">
      <div class="nk-marquee-track" id="nk-marquee-track">
        {{range .Home.Items}}<a class="nk-marquee-item" href="{{.Href}}" draggable="false"{{if .Clone}} aria-hidden="true" tabindex="-1"{{end}}>
          <img src="{{.Image}}" alt="{{if not .Clone}}{{.Title}}{{end}}" draggable="false">
          <span class="nk-marquee-title">{{.Title}}</span>
          <span class="nk-marquee-subtitle">{{.Subtitle}}</span>
        </a>
        {{end}}
      </div>
    </section>
{{end}}`

const conceptsTemplate = `{{define "content"}}
    <section class="nk-section">
      <h1>Concepts</h1>
      <div class="nk-grid" id="nk-grid">
        {{range .Concepts}}<a class="nk-tile" href="{{.MediaSrc}}" data-index="{{.Index}}" data-media="{{.Media}}" data-src="{{.MediaSrc}}" data-title="{{.Title}}" data-subtitle="{{.Subtitle}}">
          <div class="nk-thumb-box">
            {{if .Thumb}}<img class="nk-thumb nk-fit-{{.Fit}}" src="{{.Thumb}}" alt="{{.Title}}" loading="lazy">{{else}}<div class="nk-thumb-empty"></div>{{end}}
          </div>
          <div class="nk-tile-title">{{.Title}}</div>
          <div class="nk-tile-subtitle">{{.Subtitle}}</div>
        </a>
        {{end}}
      </div>
    </section>
    <div class="nk-lightbox" id="nk-lightbox" role="dialog" aria-modal="true" hidden>
      <div class="nk-lightbox-backdrop" id="nk-lightbox-backdrop"></div>
      <div class="nk-lightbox-frame" id="nk-lightbox-frame">
        <div class="nk-lightbox-media" id="nk-lightbox-media"></div>
        <div class="nk-lightbox-caption" id="nk-lightbox-caption">
          <div class="nk-lightbox-title" id="nk-lightbox-title"></div>
          <div class="nk-lightbox-subtitle" id="nk-lightbox-subtitle"></div>
        </div>
      </div>
    </div>
{{end}}`

const aboutTemplate = `{{define "content"}}
    <section class="nk-section nk-about">
      <h1>About</h1>
      <div class="nk-about-body">
        {{with .About.Photo}}<img class="nk-about-photo" src="{{.}}" alt="{{$.About.PhotoAlt}}">{{end}}
        <div>
          {{range .About.Paragraphs}}<p>{{.}}</p>
          {{end}}
          {{with .About.Footnote}}<p class="nk-muted">{{.}}</p>{{end}}
        </div>
      </div>
    </section>
{{end}}`

const contactTemplate = `{{define "content"}}
    <section class="nk-section nk-contact">
      <h1>Contact</h1>
      {{with .Contact.Email}}<p><a class="nk-email" href="mailto:{{.}}">{{.}}</a></p>{{end}}
      <ul class="nk-social">
        {{range .Contact.Social}}<li><a href="{{.URL}}" target="_blank" rel="noopener noreferrer">{{.Label}}</a></li>
        {{end}}
      </ul>
    </section>
{{end}}`

const resumeTemplate = `{{define "content"}}
    <section class="nk-section">
      <h1>{{.Resume.Heading}}</h1>
      {{with .Resume.PDF}}<object class="nk-resume" data="{{.}}" type="application/pdf"><a href="{{.}}">Download</a></object>{{end}}
    </section>
{{end}}`

const workTemplate = `{{define "content"}}
    <article class="nk-section nk-work">
      <a class="nk-back" href="{{.BasePath}}index.html">&larr; All work</a>
      <h1>{{.Title}}</h1>
      {{with .Work.Subtitle}}<p class="nk-subtitle">{{.}}</p>{{end}}
      {{with .Work.Summary}}<p class="nk-summary">{{.}}</p>{{end}}
      {{with .Work.Hero}}<figure class="nk-hero-figure"><img src="{{.Src}}" alt="{{.Alt}}">{{with .Caption}}<figcaption>{{.}}</figcaption>{{end}}</figure>{{end}}
      {{if .Work.Markdown}}<div class="nk-markdown">{{.Work.Markdown}}</div>{{end}}
      {{range .Work.Sections}}<section class="nk-work-section">
        {{with .Heading}}<h2>{{.}}</h2>{{end}}
        <div class="nk-markdown">{{.Body}}</div>
        {{if .Figures}}<div class="nk-figures">
          {{range .Figures}}<figure><img src="{{.Src}}" alt="{{.Alt}}" loading="lazy">{{with .Caption}}<figcaption>{{.}}</figcaption>{{end}}</figure>
          {{end}}
        </div>{{end}}
        {{with .Video}}<video class="nk-video" src="{{.}}" controls playsinline preload="metadata"></video>{{end}}
      </section>
      {{end}}
    </article>
{{end}}`

const notFoundTemplate = `{{define "content"}}
    <section class="nk-section">
      <h1>Not found</h1>
      <p>That page doesn't exist. <a href="{{.BasePath}}index.html">Back to the portfolio</a>.</p>
    </section>
{{end}}`

// cssContent is the full stylesheet for the site.
const cssContent = `/* ============ Variables ============ */
:root {
  --bg: #000000;
  --text: #ffffff;
  --text-muted: rgba(255,255,255,0.6);
  --border: rgba(255,255,255,0.12);
  --accent: #8ecbff;
  --radius: 12px;
  --ease: cubic-bezier(0.22, 1, 0.36, 1);
  --lightbox-ms: 420ms;
}

* { box-sizing: border-box; }

html, body {
  margin: 0;
  background: var(--bg);
  color: var(--text);
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif;
  line-height: 1.6;
}

a { color: inherit; }
img, video { max-width: 100%; display: block; }

.nk-main { min-height: 100vh; }
.nk-section { max-width: 72rem; margin: 0 auto; padding: 7rem 1.5rem 6rem; }
.nk-muted { color: var(--text-muted); }

/* ============ Nav ============ */
.nk-nav {
  position: fixed;
  top: 1.25rem;
  right: 1.5rem;
  z-index: 40;
  display: flex;
  flex-direction: column;
  align-items: flex-end;
  gap: 0.25rem;
  transition: transform 300ms var(--ease), opacity 200ms ease;
}
.nk-nav-link {
  position: relative;
  text-decoration: none;
  font-size: 0.95rem;
  letter-spacing: 0.02em;
  color: var(--text-muted);
}
.nk-nav-link:hover, .nk-nav-link.nk-active { color: var(--text); }

.nk-spark {
  position: absolute;
  left: var(--sx);
  top: var(--sy);
  width: 3px;
  height: 3px;
  border-radius: 50%;
  background: var(--accent);
  box-shadow: 0 0 6px var(--accent);
  opacity: 0;
  pointer-events: none;
}
.nk-spark-link:hover .nk-spark {
  animation: nk-spark 700ms ease-out var(--delay) infinite;
}
@keyframes nk-spark {
  0% { opacity: 0; transform: translate(0, 0) scale(0.6); }
  20% { opacity: 1; }
  100% { opacity: 0; transform: translate(var(--dx), var(--dy)) scale(1.2); }
}

body.nk-mobile-nav-hidden .nk-nav { transform: translateY(-160%); }
body.nk-concepts-overlay-open .nk-nav { opacity: 0; pointer-events: none; }
body.nk-scroll-locked { position: fixed; width: 100%; overflow: hidden; }
body.nk-intro-active { overflow: hidden; }

/* ============ Intro ============ */
.nk-intro {
  position: fixed;
  inset: 0;
  z-index: 50;
  display: flex;
  align-items: center;
  justify-content: center;
  background: #000;
  transition: opacity 650ms ease;
}
.nk-intro[hidden] { display: none; }
.nk-intro.nk-intro-fading { opacity: 0; }
.nk-intro-art { width: 100%; }
.nk-intro .bolt { fill: none; stroke: #fff; stroke-linecap: round; stroke-linejoin: round; stroke-dasharray: 1400; stroke-dashoffset: 1400; }
.nk-intro .bolt.core { stroke-width: 3; }
.nk-intro .bolt.glow { stroke-width: 9; stroke: var(--accent); opacity: 0.35; filter: blur(4px); }
.nk-intro .bolt.ghost { stroke-width: 1.5; opacity: 0.45; }
.nk-intro .bolt.ghost2 { stroke-width: 1; opacity: 0.3; }
.nk-intro .draw-left { animation: nk-draw 600ms ease-out forwards; }
.nk-intro .draw-nk { animation: nk-draw 400ms ease-out 550ms forwards; }
.nk-intro .draw-nk2 { animation: nk-draw 400ms ease-out 800ms forwards; }
.nk-intro .draw-right { animation: nk-draw 600ms ease-out 1050ms forwards; }
.nk-intro .spark { fill: none; stroke: var(--accent); stroke-width: 2; opacity: 0; }
.nk-intro .flash-1 { animation: nk-flash 240ms ease-out 450ms 2; }
.nk-intro .flash-2 { animation: nk-flash 240ms ease-out 900ms 2; }
.nk-intro .flash-3 { animation: nk-flash 240ms ease-out 1450ms 2; }
.nk-intro .delay-40 { animation-delay: 40ms; }
.nk-intro .delay-60 { animation-delay: 60ms; }
.nk-intro .delay-70 { animation-delay: 70ms; }
.nk-intro .delay-80 { animation-delay: 80ms; }
.nk-intro .delay-90 { animation-delay: 90ms; }
.nk-intro .delay-110 { animation-delay: 110ms; }
.nk-intro .delay-120 { animation-delay: 120ms; }
.nk-intro .nk-flicker { animation: nk-draw 400ms ease-out 800ms forwards, nk-flicker 120ms steps(2) 1200ms 4; }
@keyframes nk-draw { to { stroke-dashoffset: 0; } }
@keyframes nk-flash { 0%, 100% { opacity: 0; } 50% { opacity: 1; } }
@keyframes nk-flicker { 50% { opacity: 0.05; } }

/* ============ Home ============ */
.nk-hero { max-width: 72rem; margin: 0 auto; padding: 7rem 7rem 3rem 1.5rem; }
.nk-hero h1 { font-size: clamp(2.5rem, 6vw, 4.5rem); margin: 0; letter-spacing: -0.02em; }
.nk-tagline { color: var(--text-muted); max-width: 36rem; }

.nk-marquee {
  overflow: hidden;
  padding: 1rem 0 5rem;
  cursor: grab;
  user-select: none;
  touch-action: pan-y;
}
.nk-marquee:active { cursor: grabbing; }
.nk-marquee-track {
  display: flex;
  gap: 1.5rem;
  width: max-content;
  will-change: transform;
  animation: nk-marquee 40s linear infinite;
}
.nk-marquee:hover .nk-marquee-track { animation-duration: 60s; }
body.nk-wasm .nk-marquee-track { animation: none; }
@keyframes nk-marquee { to { transform: translate3d(-50%, 0, 0); } }

.nk-marquee-item {
  flex: 0 0 auto;
  width: clamp(16rem, 30vw, 24rem);
  text-decoration: none;
}
.nk-marquee-item img {
  width: 100%;
  aspect-ratio: 4 / 3;
  object-fit: cover;
  border-radius: var(--radius);
  border: 1px solid var(--border);
  pointer-events: none;
}
.nk-marquee-title { display: block; margin-top: 0.75rem; font-weight: 600; }
.nk-marquee-subtitle { display: block; color: var(--text-muted); font-size: 0.9rem; }

/* ============ Concepts ============ */
.nk-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(15rem, 1fr));
  gap: 1.75rem;
  max-width: 56rem;
  margin: 2rem auto 0;
}
.nk-tile { text-decoration: none; display: block; }
.nk-thumb-box {
  aspect-ratio: 4 / 3;
  border-radius: var(--radius);
  overflow: hidden;
  background: #0b0b0b;
  border: 1px solid var(--border);
}
.nk-thumb { width: 100%; height: 100%; transition: transform 400ms var(--ease); }
.nk-fit-cover { object-fit: cover; }
.nk-fit-contain { object-fit: contain; }
.nk-tile:hover .nk-thumb { transform: scale(1.03); }
.nk-thumb-empty { width: 100%; height: 100%; background: linear-gradient(135deg, #111, #1d1d1d); }
.nk-tile-title { margin-top: 0.75rem; font-weight: 600; }
.nk-tile-subtitle { color: var(--text-muted); font-size: 0.9rem; }

/* ============ Lightbox ============ */
.nk-lightbox { position: fixed; inset: 0; z-index: 60; }
.nk-lightbox[hidden] { display: none; }
.nk-lightbox.nk-closing { pointer-events: none; }
.nk-lightbox-backdrop {
  position: absolute;
  inset: 0;
  background: rgba(0,0,0,0);
  transition: background var(--lightbox-ms) ease;
}
.nk-lightbox.nk-expanded .nk-lightbox-backdrop { background: rgba(0,0,0,0.88); }
.nk-lightbox-frame {
  position: fixed;
  top: var(--from-top);
  left: var(--from-left);
  width: var(--from-w);
  height: var(--from-h);
  border-radius: var(--radius);
  overflow: hidden;
  background: #050505;
  transition:
    top var(--lightbox-ms) var(--ease),
    left var(--lightbox-ms) var(--ease),
    width var(--lightbox-ms) var(--ease),
    height var(--lightbox-ms) var(--ease),
    border-radius var(--lightbox-ms) var(--ease);
}
.nk-lightbox.nk-expanded .nk-lightbox-frame {
  top: var(--to-top);
  left: var(--to-left);
  width: var(--to-w);
  height: var(--to-h);
  border-radius: var(--to-r);
}
.nk-lightbox-media, .nk-lightbox-media img, .nk-lightbox-media video {
  width: 100%;
  height: 100%;
  object-fit: contain;
}
.nk-lightbox-caption {
  position: absolute;
  left: var(--cap-left, 22px);
  bottom: var(--cap-bottom, 18px);
  max-width: var(--cap-maxw, 60%);
  opacity: 0;
  transition: opacity 200ms ease;
  text-shadow: 0 1px 8px rgba(0,0,0,0.8);
}
.nk-lightbox.nk-expanded .nk-lightbox-caption { opacity: 1; transition-delay: var(--lightbox-ms); }
.nk-lightbox-title { font-weight: 600; }
.nk-lightbox-subtitle { color: var(--text-muted); font-size: 0.9rem; }

/* ============ Pages ============ */
.nk-about-body { display: grid; grid-template-columns: minmax(0, 20rem) 1fr; gap: 2.5rem; align-items: start; }
.nk-about-photo { border-radius: var(--radius); border: 1px solid var(--border); }
.nk-social { list-style: none; padding: 0; display: flex; gap: 1.5rem; }
.nk-email { font-size: 1.25rem; }
.nk-resume { width: 100%; height: 80vh; border: 1px solid var(--border); border-radius: var(--radius); }

.nk-back { color: var(--text-muted); text-decoration: none; font-size: 0.9rem; }
.nk-subtitle { color: var(--text-muted); margin-top: -0.5rem; }
.nk-summary { font-size: 1.15rem; max-width: 44rem; }
.nk-hero-figure img, .nk-figures img { border-radius: var(--radius); border: 1px solid var(--border); }
.nk-work-section { margin-top: 3rem; }
.nk-figures { display: grid; grid-template-columns: repeat(auto-fit, minmax(14rem, 1fr)); gap: 1.25rem; margin-top: 1.5rem; }
figure { margin: 0; }
figcaption { color: var(--text-muted); font-size: 0.85rem; margin-top: 0.5rem; }
.nk-video { width: 100%; border-radius: var(--radius); margin-top: 1.5rem; }
.nk-markdown pre { padding: 1rem; border-radius: 8px; overflow-x: auto; background: #0d1117 !important; }
.nk-markdown code { font-family: "SF Mono", Menlo, Consolas, monospace; font-size: 0.9em; }
.nk-markdown table { border-collapse: collapse; }
.nk-markdown th, .nk-markdown td { border: 1px solid var(--border); padding: 0.4rem 0.75rem; }

@media (max-width: 639px) {
  .nk-hero { padding-right: 7rem; }
  .nk-about-body { grid-template-columns: 1fr; }
  .nk-grid { grid-template-columns: 1fr; }
}
`

// jsContent loads the optional wasm client and wires live reload. Without the
// client the site falls back to the CSS marquee and plain media links.
const jsContent = `(function() {
  'use strict';

  var body = document.body;
  var base = body.getAttribute('data-base') || '';

  // ============ Live reload ============
  if (body.hasAttribute('data-live-reload') && 'WebSocket' in window) {
    var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
    var connect = function(delay) {
      var ws = new WebSocket(proto + '//' + location.host + '/ws/reload');
      ws.onmessage = function(ev) {
        if (ev.data === 'reload') location.reload();
      };
      ws.onclose = function() {
        setTimeout(function() { connect(Math.min(delay * 2, 5000)); }, delay);
      };
    };
    connect(500);
  }

  // ============ Wasm client ============
  var wasm = body.getAttribute('data-wasm');
  if (!wasm || !('WebAssembly' in window)) return;

  var script = document.createElement('script');
  script.src = base + 'wasm_exec.js';
  script.onload = function() {
    if (typeof Go === 'undefined') return;
    var go = new Go();
    var url = base + wasm;
    var start = function(result) { go.run(result.instance); };
    if (WebAssembly.instantiateStreaming) {
      WebAssembly.instantiateStreaming(fetch(url), go.importObject).then(start).catch(function() {});
    } else {
      fetch(url)
        .then(function(r) { return r.arrayBuffer(); })
        .then(function(buf) { return WebAssembly.instantiate(buf, go.importObject); })
        .then(start)
        .catch(function() {});
    }
  };
  script.onerror = function() {};
  document.head.appendChild(script);
})();
`
