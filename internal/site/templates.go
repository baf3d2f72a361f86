package site

// pageTemplate is the full document shell. It embeds the sidebar and content
// fragments, which are also rendered on their own for live updates.
const pageTemplate = `{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | {{.SiteTitle}}</title>
  <link rel="stylesheet" href="{{.Assets}}style.css">
  <script src="https://cdn.jsdelivr.net/npm/chart.js@4/dist/chart.umd.min.js"></script>
</head>
<body data-mode="{{.Mode}}" data-section="{{.Active}}" data-site-title="{{.SiteTitle}}" data-scroll-threshold="{{.Threshold}}" data-search="{{.SearchURL}}">
  <header class="site-header{{if .Scrolled}} scrolled{{end}}" id="site-header">
    <div class="brand">
      <span class="brand-mark">📖</span>
      <span class="brand-title">{{.SiteTitle}}</span>
    </div>
    <div class="search">
      <input type="search" id="search-input" placeholder="Search the guide..." autocomplete="off" aria-label="Search">
      <div class="search-results" id="search-results" hidden></div>
    </div>
    <a class="menu-toggle" id="menu-toggle" href="{{.MenuHref}}" role="button" aria-label="Toggle navigation" aria-expanded="{{.SidebarOpen}}">{{if .SidebarOpen}}✕{{else}}☰{{end}}</a>
  </header>
  <div class="layout">
    <aside class="sidebar{{if .SidebarOpen}} open{{end}}" id="sidebar">{{.Sidebar}}</aside>
    <main class="content" id="content">{{.Content}}</main>
  </div>
  {{if .Static}}<div class="sidebar-overlay{{if .SidebarOpen}} visible{{end}}" id="sidebar-overlay"></div>{{else}}<a class="sidebar-overlay{{if .SidebarOpen}} visible{{end}}" id="sidebar-overlay" href="{{.CloseHref}}" aria-label="Close navigation"></a>{{end}}
  <script src="{{.Assets}}script.js"></script>
</body>
</html>{{end}}`

const sidebarTemplate = `{{define "sidebar"}}<nav class="sidebar-nav">
{{- range .Groups}}
  <div class="nav-group">
    <h3 class="nav-category cat-{{.Color}}">{{.Title}}</h3>
    {{- range .Items}}
    <a class="nav-item{{if .Active}} active{{end}}" href="{{.Href}}" data-section-link="{{.ID}}"{{if .Active}} aria-current="page"{{end}}>
      <span class="nav-icon">{{glyph .Icon}}</span><span class="nav-title">{{.Title}}</span>
    </a>
    {{- end}}
  </div>
{{- end}}
</nav>
{{with .Footer}}<div class="sidebar-footer"><p>{{.}}</p></div>{{end}}{{end}}`

const contentTemplate = `{{define "content"}}<article class="section{{if .Placeholder}} is-placeholder{{end}}" data-section="{{.ID}}">
  <h1 class="section-title">{{.Title}}</h1>
  {{- with .Lead}}
  <p class="lead">{{.}}</p>
  {{- end}}
  {{- range .Blocks}}
  {{template "block" .}}
  {{- end}}
</article>{{end}}

{{define "block"}}
{{- if eq .Kind "prose"}}<section class="prose">{{.Body}}</section>
{{- else if eq .Kind "callout"}}<aside class="callout callout-{{.Tone}}">{{with .Icon}}<span class="callout-icon">{{glyph .}}</span>{{end}}<div class="callout-body">{{.Body}}</div></aside>
{{- else if eq .Kind "cards"}}<section class="cards">
  {{- with .Title}}<h2>{{.}}</h2>{{end}}
  <div class="card-grid cols-{{.Columns}}">
    {{- range .Cards}}
    {{if .Href}}<a class="card" href="{{.Href}}" target="_blank" rel="noopener">{{else}}<div class="card">{{end}}
      {{- with .Icon}}<span class="card-icon">{{glyph .}}</span>{{end}}
      <h3 class="card-title">{{.Title}}</h3>
      {{- with .Text}}<p class="card-text">{{.}}</p>{{end}}
    {{if .Href}}</a>{{else}}</div>{{end}}
    {{- end}}
  </div>
</section>
{{- else if eq .Kind "accordion"}}<div class="accordion{{if .Open}} open{{end}}">
  <button type="button" class="accordion-toggle" data-accordion="{{.Index}}" aria-expanded="{{.Open}}">
    <h3 class="accordion-title">{{.Title}}</h3>
    <span class="chevron{{if .Open}} rotated{{end}}" aria-hidden="true">▾</span>
  </button>
  <div class="accordion-body"{{if not .Open}} hidden{{end}}>{{.Body}}</div>
</div>
{{- else if eq .Kind "chart"}}<figure class="chart-card">
  {{- with .Title}}<h3>{{.}}</h3>{{end}}
  {{- with .Caption}}<figcaption>{{.}}</figcaption>{{end}}
  <div class="chart-frame"><canvas data-chart="{{.Chart}}" role="img" aria-label="{{.Title}}"></canvas></div>
  <details class="chart-data"><summary>Data</summary>{{.Body}}</details>
</figure>
{{- else if eq .Kind "placeholder"}}<div class="placeholder">
  {{- with .Icon}}<div class="placeholder-icon">{{glyph .}}</div>{{end}}
  <h2>{{.Title}}</h2>
  {{.Body}}
</div>
{{- end}}
{{- end}}`

// cssContent is the stylesheet shared by the live and static sites.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #f9fafb;
  --bg-card: #ffffff;
  --bg-sidebar: #ffffff;
  --text: #111827;
  --text-secondary: #374151;
  --text-muted: #6b7280;
  --border: #e5e7eb;
  --accent: #2563eb;
  --accent-light: #dbeafe;
  --accent-strong: #1e40af;
  --header-height: 5rem;
  --sidebar-width: 20rem;
  --content-max-width: 64rem;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
  --shadow-lg: 0 10px 25px rgba(0,0,0,0.1);
  --cat-blue: #2563eb;
  --cat-green: #16a34a;
  --cat-purple: #9333ea;
  --cat-orange: #ea580c;
}

/* ============ Reset & Base ============ */
*, *::before, *::after {
  box-sizing: border-box;
  margin: 0;
  padding: 0;
}

html {
  font-size: 16px;
  scroll-behavior: smooth;
}

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.7;
}

/* ============ Header ============ */
.site-header {
  position: fixed;
  top: 0;
  left: 0;
  right: 0;
  height: var(--header-height);
  z-index: 50;
  display: flex;
  align-items: center;
  gap: 16px;
  padding: 0 24px;
  background: #ffffff;
  border-bottom: 1px solid var(--border);
  transition: background 0.3s, box-shadow 0.3s;
}

.site-header.scrolled {
  background: rgba(255,255,255,0.95);
  backdrop-filter: blur(4px);
  box-shadow: var(--shadow-lg);
}

.brand {
  display: flex;
  align-items: center;
  gap: 12px;
  margin-right: auto;
}

.brand-mark {
  display: inline-flex;
  align-items: center;
  justify-content: center;
  width: 40px;
  height: 40px;
  border-radius: 10px;
  background: linear-gradient(135deg, #2563eb, #9333ea);
  font-size: 1.2rem;
}

.brand-title {
  font-size: 1.25rem;
  font-weight: 700;
  background: linear-gradient(90deg, #2563eb, #9333ea);
  -webkit-background-clip: text;
  background-clip: text;
  color: transparent;
}

.menu-toggle {
  display: none;
  font-size: 1.5rem;
  color: var(--text-secondary);
  text-decoration: none;
  padding: 4px 10px;
  border-radius: 8px;
}

.menu-toggle:hover {
  background: var(--bg);
}

/* ============ Search ============ */
.search {
  position: relative;
  width: 18rem;
}

#search-input {
  width: 100%;
  padding: 8px 12px;
  border: 1px solid var(--border);
  border-radius: 8px;
  font-size: 0.9rem;
  outline: none;
}

#search-input:focus {
  border-color: var(--accent);
  box-shadow: 0 0 0 3px var(--accent-light);
}

.search-results {
  position: absolute;
  top: calc(100% + 6px);
  left: 0;
  right: 0;
  max-height: 24rem;
  overflow-y: auto;
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: 8px;
  box-shadow: var(--shadow-lg);
}

.search-hit {
  display: block;
  padding: 10px 12px;
  color: var(--text);
  text-decoration: none;
  border-bottom: 1px solid var(--border);
}

.search-hit:hover {
  background: var(--accent-light);
}

.search-hit strong {
  display: block;
  font-size: 0.9rem;
}

.search-hit span {
  font-size: 0.8rem;
  color: var(--text-muted);
}

.search-hit mark {
  background: #fef08a;
  color: inherit;
}

.search-empty {
  padding: 10px 12px;
  color: var(--text-muted);
  font-size: 0.85rem;
}

/* ============ Layout ============ */
.layout {
  display: flex;
  padding-top: var(--header-height);
}

/* ============ Sidebar ============ */
.sidebar {
  position: sticky;
  top: var(--header-height);
  height: calc(100vh - var(--header-height));
  width: var(--sidebar-width);
  flex-shrink: 0;
  overflow-y: auto;
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  padding: 24px 16px;
  display: flex;
  flex-direction: column;
  z-index: 40;
  transition: transform 0.3s;
}

.sidebar-nav {
  flex: 1;
}

.nav-group {
  margin-bottom: 24px;
}

.nav-category {
  font-size: 0.72rem;
  font-weight: 700;
  text-transform: uppercase;
  letter-spacing: 0.05em;
  padding: 0 8px;
  margin-bottom: 10px;
}

.cat-blue { color: var(--cat-blue); }
.cat-green { color: var(--cat-green); }
.cat-purple { color: var(--cat-purple); }
.cat-orange { color: var(--cat-orange); }

.nav-item {
  display: flex;
  align-items: center;
  gap: 12px;
  padding: 10px 16px;
  border-radius: 8px;
  border-left: 4px solid transparent;
  color: var(--text-secondary);
  text-decoration: none;
  transition: background 0.2s, color 0.2s;
}

.nav-item:hover {
  background: #f3f4f6;
  color: var(--text);
}

.nav-item.active {
  background: var(--accent-light);
  color: var(--accent-strong);
  border-left-color: #3b82f6;
  font-weight: 600;
}

.sidebar-footer {
  border-top: 1px solid var(--border);
  padding-top: 16px;
  text-align: center;
  font-size: 0.85rem;
  color: var(--text-muted);
}

.sidebar-overlay {
  display: none;
  position: fixed;
  inset: 0;
  background: rgba(0,0,0,0.5);
  z-index: 30;
}

/* ============ Content ============ */
.content {
  flex: 1;
  min-width: 0;
  padding: 40px 48px 80px;
}

.section {
  max-width: var(--content-max-width);
  margin: 0 auto;
  animation: fade-in 0.4s ease-out;
}

@keyframes fade-in {
  from { opacity: 0; transform: translateY(8px); }
  to { opacity: 1; transform: none; }
}

.section-title {
  font-size: 2.25rem;
  font-weight: 700;
  margin-bottom: 24px;
}

.lead {
  font-size: 1.2rem;
  color: var(--text-muted);
  margin-bottom: 40px;
}

.section h2 {
  font-size: 1.5rem;
  font-weight: 600;
  margin: 32px 0 16px;
}

.section h3 {
  font-size: 1.15rem;
  font-weight: 600;
  margin: 20px 0 8px;
}

.section h4 {
  font-size: 1rem;
  font-weight: 600;
  margin: 16px 0 6px;
  color: var(--text-secondary);
}

.section p {
  margin-bottom: 16px;
}

.section ul, .section ol {
  margin: 0 0 16px;
  padding-left: 24px;
}

.section a {
  color: var(--accent);
}

.section blockquote {
  border-left: 4px solid #60a5fa;
  background: #eff6ff;
  color: #1e40af;
  padding: 12px 16px;
  margin: 0 0 16px;
  border-radius: 0 8px 8px 0;
}

.section blockquote p:last-child {
  margin-bottom: 0;
}

.prose {
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: 16px;
  padding: 32px;
  margin-bottom: 32px;
  box-shadow: var(--shadow);
}

.prose > h2:first-child {
  margin-top: 0;
}

/* ============ Tables ============ */
.table-wrap {
  overflow-x: auto;
  margin-bottom: 16px;
}

.section table {
  width: 100%;
  border-collapse: collapse;
  font-size: 0.9rem;
}

.section th, .section td {
  padding: 10px 14px;
  border-bottom: 1px solid var(--border);
  text-align: left;
}

.section th {
  font-weight: 600;
  background: #f9fafb;
}

/* ============ Cards ============ */
.cards {
  margin-bottom: 32px;
}

.card-grid {
  display: grid;
  gap: 24px;
}

.card-grid.cols-1 { grid-template-columns: 1fr; }
.card-grid.cols-2 { grid-template-columns: repeat(2, 1fr); }
.card-grid.cols-3 { grid-template-columns: repeat(3, 1fr); }
.card-grid.cols-4 { grid-template-columns: repeat(4, 1fr); }

.card {
  display: block;
  padding: 24px;
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: 16px;
  color: inherit;
  text-decoration: none;
  transition: box-shadow 0.3s;
}

a.card:hover,
.card:hover {
  box-shadow: var(--shadow-lg);
}

.card-icon {
  display: block;
  font-size: 2rem;
  margin-bottom: 12px;
}

.card-title {
  margin: 0 0 6px;
}

.card-text {
  color: var(--text-muted);
  margin: 0;
}

/* ============ Callouts ============ */
.callout {
  display: flex;
  gap: 12px;
  padding: 20px 24px;
  border-radius: 12px;
  border-left: 4px solid;
  margin-bottom: 32px;
}

.callout-info { background: #eff6ff; border-color: #60a5fa; color: #1e3a8a; }
.callout-success { background: #f0fdf4; border-color: #4ade80; color: #14532d; }
.callout-warning { background: #fffbeb; border-color: #fbbf24; color: #78350f; }

.callout-icon {
  font-size: 1.4rem;
}

.callout-body p:last-child {
  margin-bottom: 0;
}

/* ============ Accordion ============ */
.accordion {
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: 12px;
  box-shadow: var(--shadow);
  margin-bottom: 24px;
  transition: box-shadow 0.3s;
}

.accordion:hover {
  box-shadow: var(--shadow-lg);
}

.accordion-toggle {
  width: 100%;
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 16px 24px;
  background: none;
  border: none;
  border-radius: 12px;
  cursor: pointer;
  text-align: left;
  font: inherit;
}

.accordion-toggle:hover {
  background: #f9fafb;
}

.accordion-title {
  margin: 0 !important;
  font-size: 1.1rem;
}

.chevron {
  color: var(--text-muted);
  transition: transform 0.3s;
}

.chevron.rotated {
  transform: rotate(180deg);
}

.accordion-body {
  border-top: 1px solid #f3f4f6;
  padding: 16px 24px 24px;
}

/* ============ Charts ============ */
.chart-card {
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: 16px;
  padding: 24px;
  margin-bottom: 32px;
  box-shadow: var(--shadow);
}

.chart-card h3 {
  margin-top: 0;
}

.chart-card figcaption {
  color: var(--text-muted);
  margin-bottom: 16px;
}

.chart-frame {
  position: relative;
  height: 20rem;
}

.chart-data {
  margin-top: 16px;
  font-size: 0.85rem;
}

.chart-data summary {
  cursor: pointer;
  color: var(--text-muted);
}

/* ============ Placeholder ============ */
.placeholder {
  text-align: center;
  padding: 64px 32px;
  background: linear-gradient(135deg, #f9fafb, #f3f4f6);
  border-radius: 16px;
  border: 1px solid var(--border);
}

.placeholder-icon {
  font-size: 3rem;
  margin-bottom: 16px;
}

.placeholder p {
  max-width: 40rem;
  margin: 0 auto;
  color: var(--text-muted);
}

/* ============ Narrow viewports ============ */
@media (max-width: 1024px) {
  .menu-toggle {
    display: inline-block;
  }

  .search {
    display: none;
  }

  .sidebar {
    position: fixed;
    left: 0;
    transform: translateX(-100%);
  }

  .sidebar.open {
    transform: translateX(0);
  }

  .sidebar-overlay.visible {
    display: block;
  }

  .content {
    padding: 24px 20px 64px;
  }

  .card-grid.cols-2,
  .card-grid.cols-3,
  .card-grid.cols-4 {
    grid-template-columns: 1fr;
  }
}
`

// jsContent drives the page. In live mode every interaction is sent over the
// websocket and the server answers with the re-rendered fragments; in static
// mode the same state is kept in the page.
const jsContent = `(function() {
  "use strict";

  var body = document.body;
  var mode = body.getAttribute("data-mode");
  var siteTitle = body.getAttribute("data-site-title") || document.title;
  var threshold = parseInt(body.getAttribute("data-scroll-threshold") || "10", 10);
  var header = document.getElementById("site-header");
  var sidebar = document.getElementById("sidebar");
  var overlay = document.getElementById("sidebar-overlay");
  var menu = document.getElementById("menu-toggle");
  var main = document.getElementById("content");
  var charts = [];

  // ===== Charts =====
  function drawCharts() {
    charts.forEach(function(c) { c.destroy(); });
    charts = [];
    if (typeof Chart === "undefined") return;
    main.querySelectorAll("canvas[data-chart]").forEach(function(el) {
      try {
        charts.push(new Chart(el, JSON.parse(el.getAttribute("data-chart"))));
      } catch (e) {
        console.warn("chart:", e);
      }
    });
  }

  function applyState(state) {
    sidebar.classList.toggle("open", state.sidebar_open);
    overlay.classList.toggle("visible", state.sidebar_open);
    menu.setAttribute("aria-expanded", state.sidebar_open ? "true" : "false");
    menu.textContent = state.sidebar_open ? "✕" : "☰";
    header.classList.toggle("scrolled", state.header_scrolled);
  }

  // ===== Live mode =====
  function live() {
    var proto = location.protocol === "https:" ? "wss:" : "ws:";
    var state = { active: body.getAttribute("data-section"), sidebar_open: false, header_scrolled: false };
    var ws = null;
    var queue = [];
    var lastScrolled = null;

    function send(msg) {
      var data = JSON.stringify(msg);
      if (ws && ws.readyState === WebSocket.OPEN) {
        ws.send(data);
      } else {
        queue.push(data);
      }
    }

    function connect() {
      ws = new WebSocket(proto + "//" + location.host + "/ws?section=" + encodeURIComponent(state.active));
      ws.onopen = function() {
        queue.forEach(function(m) { ws.send(m); });
        queue = [];
      };
      ws.onmessage = function(ev) {
        var msg = JSON.parse(ev.data);
        if (msg.type === "error") {
          console.warn("guide:", msg.error);
          return;
        }
        var moved = msg.state.active !== state.active;
        state = msg.state;
        if (msg.sidebar) sidebar.innerHTML = msg.sidebar;
        if (msg.content) {
          main.innerHTML = msg.content;
          drawCharts();
        }
        if (moved) {
          var path = "/sections/" + encodeURIComponent(state.active);
          if (location.pathname !== path) history.pushState({ section: state.active }, "", path);
          window.scrollTo(0, 0);
        }
        if (msg.title) document.title = msg.title + " | " + siteTitle;
        applyState(state);
      };
      ws.onclose = function() {
        setTimeout(connect, 1000);
      };
    }

    document.addEventListener("click", function(e) {
      var link = e.target.closest("[data-section-link]");
      if (link) {
        e.preventDefault();
        hideResults();
        send({ type: "select", section: link.getAttribute("data-section-link") });
        return;
      }
      var acc = e.target.closest(".accordion-toggle");
      if (acc) {
        e.preventDefault();
        send({ type: "toggle_accordion", accordion: parseInt(acc.getAttribute("data-accordion"), 10) });
        return;
      }
      if (e.target.closest("#menu-toggle")) {
        e.preventDefault();
        send({ type: "toggle_sidebar" });
        return;
      }
      if (e.target.closest("#sidebar-overlay")) {
        e.preventDefault();
        send({ type: "close_sidebar" });
      }
    });

    window.addEventListener("scroll", function() {
      var y = Math.round(window.scrollY);
      var scrolled = y > threshold;
      if (scrolled === lastScrolled) return;
      lastScrolled = scrolled;
      send({ type: "scroll", offset: y });
    }, { passive: true });

    window.addEventListener("popstate", function(e) {
      if (e.state && e.state.section) send({ type: "select", section: e.state.section });
    });

    history.replaceState({ section: state.active }, "", location.pathname);
    connect();
  }

  // ===== Static mode =====
  function standalone() {
    var state = { sidebar_open: false, header_scrolled: false };

    document.addEventListener("click", function(e) {
      var acc = e.target.closest(".accordion-toggle");
      if (acc) {
        var box = acc.parentElement;
        var open = !box.classList.contains("open");
        box.classList.toggle("open", open);
        acc.setAttribute("aria-expanded", open ? "true" : "false");
        acc.querySelector(".chevron").classList.toggle("rotated", open);
        box.querySelector(".accordion-body").hidden = !open;
        return;
      }
      if (e.target.closest("#menu-toggle")) {
        e.preventDefault();
        state.sidebar_open = !state.sidebar_open;
        applyState(state);
        return;
      }
      if (e.target.closest("#sidebar-overlay")) {
        state.sidebar_open = false;
        applyState(state);
      }
    });

    window.addEventListener("scroll", function() {
      var scrolled = window.scrollY > threshold;
      if (scrolled === state.header_scrolled) return;
      state.header_scrolled = scrolled;
      applyState(state);
    }, { passive: true });
  }

  // ===== Search =====
  var searchInput = document.getElementById("search-input");
  var searchResults = document.getElementById("search-results");
  var searchURL = body.getAttribute("data-search");
  var staticIndex = null;
  var searchTimer = null;

  function hideResults() {
    if (searchResults) searchResults.hidden = true;
  }

  function showHits(hits) {
    searchResults.innerHTML = "";
    if (hits.length === 0) {
      var empty = document.createElement("div");
      empty.className = "search-empty";
      empty.textContent = "No matches";
      searchResults.appendChild(empty);
    }
    hits.forEach(function(hit) {
      var id = hit.section_id || hit.id;
      var a = document.createElement("a");
      a.className = "search-hit";
      a.href = mode === "live" ? "/sections/" + encodeURIComponent(id) : hit.path;
      if (mode === "live") a.setAttribute("data-section-link", id);
      var title = document.createElement("strong");
      title.textContent = hit.title;
      var snippet = document.createElement("span");
      if (hit.snippet_html) {
        snippet.innerHTML = hit.snippet_html;
      } else {
        snippet.textContent = hit.summary || "";
      }
      a.appendChild(title);
      a.appendChild(snippet);
      searchResults.appendChild(a);
    });
    searchResults.hidden = false;
  }

  function searchStatic(q) {
    function run() {
      var terms = q.toLowerCase().split(/\s+/);
      showHits(staticIndex.filter(function(entry) {
        var text = (entry.title + " " + entry.content).toLowerCase();
        return terms.every(function(t) { return text.indexOf(t) !== -1; });
      }).slice(0, 8));
    }
    if (staticIndex) return run();
    fetch(searchURL)
      .then(function(r) { return r.json(); })
      .then(function(data) { staticIndex = data; run(); })
      .catch(function() { staticIndex = []; });
  }

  function searchLive(q) {
    fetch(searchURL + "?limit=8&q=" + encodeURIComponent(q))
      .then(function(r) { return r.json(); })
      .then(function(data) { showHits(data.results || []); })
      .catch(hideResults);
  }

  if (searchInput && searchResults) {
    searchInput.addEventListener("input", function() {
      var q = this.value.trim();
      clearTimeout(searchTimer);
      if (q === "") {
        hideResults();
        return;
      }
      searchTimer = setTimeout(function() {
        if (mode === "live") {
          searchLive(q);
        } else {
          searchStatic(q);
        }
      }, 150);
    });
    searchInput.addEventListener("keydown", function(e) {
      if (e.key === "Escape") {
        this.value = "";
        hideResults();
      }
    });
  }

  if (mode === "live" && "WebSocket" in window) {
    live();
  } else {
    standalone();
  }
  drawCharts();
})();
`
