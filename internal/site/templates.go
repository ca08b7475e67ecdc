package site

// cssContent is the stylesheet for the comparison page.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-light: #e7f5ff;
  --match: #ffe066;
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.1);
}

@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1b26;
    --bg-secondary: #1f2030;
    --text: #c0caf5;
    --text-muted: #565f89;
    --border: #292e42;
    --accent: #7aa2f7;
    --accent-light: #1a1b2e;
    --match: #9e6a03;
    --shadow-lg: 0 4px 12px rgba(0,0,0,0.4);
  }
}

/* ============ Reset & Base ============ */
*, *::before, *::after {
  box-sizing: border-box;
  margin: 0;
  padding: 0;
}

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  line-height: 1.6;
  color: var(--text);
  background: var(--bg);
}

a { color: var(--accent); }

.content {
  max-width: 1200px;
  margin: 0 auto;
  padding: 2rem 1.5rem;
}

/* ============ Header ============ */
header {
  position: relative;
  margin-bottom: 2rem;
}

.header {
  margin-bottom: 1rem;
}

.modal-trigger {
  position: absolute;
  top: 0;
  right: 0;
  width: 2rem;
  height: 2rem;
  border-radius: 50%;
  border: 1px solid var(--border);
  background: var(--bg-secondary);
  color: var(--text);
  cursor: pointer;
  font-weight: 700;
}

.topics {
  display: flex;
  flex-wrap: wrap;
  gap: 0.5rem;
}

.topic {
  padding: 0.25rem 0.75rem;
  border: 1px solid var(--border);
  border-radius: 999px;
  text-decoration: none;
}

.topic.selected {
  background: var(--accent);
  border-color: var(--accent);
  color: var(--bg);
}

/* ============ Columns ============ */
.columns {
  display: grid;
  grid-template-columns: 1fr 1fr;
  gap: 2rem;
}

.columns[hidden] { display: none; }

@media (max-width: 768px) {
  .columns { grid-template-columns: 1fr; }
}

.metadata {
  margin-bottom: 1rem;
  color: var(--text-muted);
  font-size: 0.9rem;
}

blockquote {
  margin: 0 0 1rem;
  padding: 0.75rem 1rem;
  border-left: 4px solid var(--accent);
  background: var(--accent-light);
}

.keyword-match {
  background: var(--match);
  color: inherit;
  padding: 0 0.1em;
}

/* ============ About dialog ============ */
.modal {
  max-width: 640px;
  margin: auto;
  padding: 1.5rem;
  border: 1px solid var(--border);
  border-radius: 8px;
  background: var(--bg);
  color: var(--text);
  box-shadow: var(--shadow-lg);
}

.modal::backdrop { background: rgba(0,0,0,0.5); }

.modal-body p,
.modal-body blockquote { margin-bottom: 1rem; }

.modal-close {
  padding: 0.25rem 1rem;
  cursor: pointer;
}
`

// jsContent drives fragment-based topic selection on the static page.
const jsContent = `(function() {
  "use strict";

  var body = document.body;
  var titleSuffix = document.getElementById("topic-suffix");
  var baseTitle = body.getAttribute("data-title") || document.title;

  // Mirrors router.ResolveSelection: strip a single leading "#".
  function resolveSelection(fragment) {
    return fragment.charAt(0) === "#" ? fragment.slice(1) : fragment;
  }

  function applySelection() {
    if (body.getAttribute("data-static") !== "true") return;
    var id = resolveSelection(window.location.hash);
    var selectedName = "";

    document.querySelectorAll("section.columns").forEach(function(section) {
      var active = section.getAttribute("data-topic") === id;
      section.hidden = !active;
      if (active) selectedName = section.getAttribute("data-name");
    });
    document.querySelectorAll("nav.topics a.topic").forEach(function(link) {
      link.classList.toggle("selected", !!selectedName && link.getAttribute("data-topic") === id);
    });

    if (titleSuffix) titleSuffix.textContent = selectedName ? ": " + selectedName : "";
    document.title = selectedName ? baseTitle + ": " + selectedName : baseTitle;
  }

  window.addEventListener("hashchange", applySelection);
  applySelection();

  // ===== About dialog =====
  var dialog = document.getElementById("about-dialog");
  var openBtn = document.getElementById("about-open");
  var closeBtn = document.getElementById("about-close");
  if (dialog && openBtn) {
    openBtn.addEventListener("click", function() { dialog.showModal(); });
  }
  if (dialog && closeBtn) {
    closeBtn.addEventListener("click", function() { dialog.close(); });
  }
  if (dialog) {
    dialog.addEventListener("click", function(e) {
      if (e.target === dialog) dialog.close();
    });
  }

  // ===== Live reload (preview server only) =====
  if (body.getAttribute("data-livereload") === "true" && window.WebSocket) {
    var proto = window.location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + window.location.host + "/livereload");
    ws.onmessage = function(e) {
      try {
        var msg = JSON.parse(e.data);
        if (msg.type === "reload") window.location.reload();
      } catch (err) {}
    };
  }
})();
`

// Stylesheet returns the page stylesheet.
func Stylesheet() string { return cssContent }

// Script returns the page script.
func Script() string { return jsContent }
