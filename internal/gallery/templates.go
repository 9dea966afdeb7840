package gallery

// pageTemplate is the full gallery page: header, search box, grid and the
// modal viewer.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{if .Modal.Open}}{{.Modal.Title}} · {{end}}{{.Title}}</title>
  <link rel="stylesheet" href="{{.CSSHref}}">
</head>
<body data-catalog="{{.CatalogHref}}" data-asset-base="{{.AssetBase}}" data-item-href="{{.ItemHrefTmpl}}">
  <header class="top">
    <h1>{{.Title}}</h1>
    {{if .Intro}}<div class="intro">{{.Intro}}</div>{{end}}
    <form class="search" method="get" action="{{.Modal.CloseHref}}">
      <input id="q" name="q" type="search" value="{{.Query}}" placeholder="Search by ID..." autocomplete="off">
    </form>
  </header>
  <main>
    <section id="grid" class="grid">{{template "grid" .}}</section>
  </main>
  <div id="modal" class="modal{{if not .Modal.Open}} hidden{{end}}" aria-hidden="{{if .Modal.Open}}false{{else}}true{{end}}">
    <a id="backdrop" class="backdrop" href="{{.Modal.CloseHref}}" aria-label="Close"></a>
    <div class="modal-content" role="dialog" aria-labelledby="sareeTitle">
      <div class="modal-head">
        <div>
          <h2 id="sareeTitle">{{.Modal.Title}}</h2>
          <div id="count" class="meta">{{.Modal.CountLabel}}</div>
        </div>
        <div class="actions">
          <a id="originals" class="btn" href="{{if .Modal.Open}}{{.Modal.OriginalsHref}}{{else}}#{{end}}" target="_blank" rel="noopener">Originals</a>
          <a id="close" class="btn" href="{{.Modal.CloseHref}}" aria-label="Close">&times;</a>
        </div>
      </div>
      <img id="mainImg" class="main-img" src="{{.Modal.Main}}" alt="{{.Modal.Title}}">
      <div id="thumbs" class="thumbs">
        {{- range .Modal.Thumbs}}
        <a href="{{.Href}}" data-src="{{.URL}}" data-index="{{.Index}}"><img src="{{.URL}}" class="{{if .Active}}active{{end}}" alt="thumb"></a>
        {{- end}}
      </div>
    </div>
  </div>
  <script src="{{.JSHref}}"></script>
</body>
</html>`

// gridTemplate renders the grid contents, or the fatal error message.
const gridTemplate = `{{if .Error}}<p class="error">Error: {{.Error}}</p>{{else}}
{{- range .Cards}}
<a class="card" data-id="{{.ID}}" href="{{.Href}}">
  <img src="{{.Thumb}}" alt="{{.ID}}" loading="lazy">
  <div class="pad">
    <div class="id">{{.ID}}</div>
    <div class="meta">{{.CountLabel}}</div>
  </div>
</a>
{{- end}}{{end}}`

// CSS is the gallery stylesheet.
const CSS = `:root {
  --bg: #14110f;
  --card: #201b18;
  --fg: #f3ece6;
  --muted: #a89a8f;
  --accent: #d9a441;
}
* { box-sizing: border-box; }
body { margin: 0; background: var(--bg); color: var(--fg); font-family: system-ui, sans-serif; }
a { color: inherit; text-decoration: none; }
.top { padding: 24px 20px 8px; }
.top h1 { margin: 0 0 8px; font-size: 1.6rem; }
.intro { color: var(--muted); max-width: 70ch; }
.search input { width: 100%; max-width: 420px; padding: 10px 12px; border-radius: 10px; border: 1px solid #3a322d; background: var(--card); color: var(--fg); }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(180px, 1fr)); gap: 14px; padding: 16px 20px 40px; }
.card { display: block; background: var(--card); border-radius: 12px; overflow: hidden; cursor: pointer; }
.card img { width: 100%; aspect-ratio: 3 / 4; object-fit: cover; display: block; }
.card .pad { padding: 8px 10px; }
.card .id { font-weight: 600; }
.meta { color: var(--muted); font-size: .85rem; }
.error { color: #ffb4b4; }
.modal { position: fixed; inset: 0; display: flex; align-items: center; justify-content: center; z-index: 10; }
.modal.hidden { display: none; }
.backdrop { position: absolute; inset: 0; background: rgba(0, 0, 0, .75); }
.modal-content { position: relative; background: var(--card); border-radius: 14px; padding: 16px; width: min(960px, 94vw); max-height: 94vh; overflow: auto; }
.modal-head { display: flex; justify-content: space-between; align-items: flex-start; gap: 12px; }
.modal-head h2 { margin: 0; }
.actions { display: flex; gap: 8px; }
.btn { border: 1px solid #3a322d; border-radius: 8px; padding: 6px 12px; }
.main-img { width: 100%; max-height: 70vh; object-fit: contain; margin: 12px 0; }
.thumbs { display: flex; gap: 8px; overflow-x: auto; }
.thumbs img { width: 72px; height: 96px; object-fit: cover; border-radius: 6px; opacity: .6; border: 2px solid transparent; }
.thumbs img.active { opacity: 1; border-color: var(--accent); }
`

// JS drives live search and the client-side viewer. It reads the catalog
// once and never refetches it.
const JS = `(function() {
  var body = document.body;
  var grid = document.getElementById("grid");
  var q = document.getElementById("q");
  var modal = document.getElementById("modal");
  var backdrop = document.getElementById("backdrop");
  var closeBtn = document.getElementById("close");
  var mainImg = document.getElementById("mainImg");
  var thumbs = document.getElementById("thumbs");
  var title = document.getElementById("sareeTitle");
  var countEl = document.getElementById("count");
  var originals = document.getElementById("originals");

  var assetBase = body.dataset.assetBase || "";
  var itemHref = body.dataset.itemHref || "#";
  var items = null;

  function esc(s) {
    return String(s).replace(/[&<>"']/g, function(c) {
      return {"&": "&amp;", "<": "&lt;", ">": "&gt;", '"': "&quot;", "'": "&#39;"}[c];
    });
  }

  function label(n) { return n + " photo(s)"; }

  function render() {
    if (!items) return;
    var term = q.value.trim().toUpperCase();
    var filtered = term ? items.filter(function(x) { return x.id.indexOf(term) !== -1; }) : items;
    grid.innerHTML = filtered.map(function(s) {
      return '<a class="card" data-id="' + esc(s.id) + '" href="' + esc(itemHref.replace("__ID__", encodeURIComponent(s.id))) + '">' +
        '<img src="' + esc(assetBase + s.thumb) + '" alt="' + esc(s.id) + '" loading="lazy">' +
        '<div class="pad"><div class="id">' + esc(s.id) + '</div>' +
        '<div class="meta">' + label(s.images.length) + '</div></div></a>';
    }).join("");
  }

  function openModal(s) {
    if (!s || !s.images || s.images.length === 0) return;
    modal.classList.remove("hidden");
    modal.setAttribute("aria-hidden", "false");
    title.textContent = "Saree " + s.id;
    countEl.textContent = label(s.images.length);
    originals.href = s.originals || "#";
    mainImg.src = assetBase + s.images[0];
    thumbs.innerHTML = s.images.map(function(src, i) {
      var url = esc(assetBase + src);
      return '<a href="#" data-src="' + url + '" data-index="' + i + '"><img src="' + url + '" class="' + (i === 0 ? "active" : "") + '" alt="thumb"></a>';
    }).join("");
  }

  function closeModal(e) {
    if (e) e.preventDefault();
    modal.classList.add("hidden");
    modal.setAttribute("aria-hidden", "true");
  }

  function selectThumb(link) {
    thumbs.querySelectorAll("img").forEach(function(x) { x.classList.remove("active"); });
    link.querySelector("img").classList.add("active");
    mainImg.src = link.dataset.src;
  }

  grid.addEventListener("click", function(e) {
    var card = e.target.closest(".card");
    if (!card || !items) return;
    var s = items.find(function(x) { return x.id === card.dataset.id; });
    if (!s) return;
    e.preventDefault();
    openModal(s);
  });

  thumbs.addEventListener("click", function(e) {
    var link = e.target.closest("a[data-src]");
    if (!link) return;
    e.preventDefault();
    selectThumb(link);
  });

  backdrop.addEventListener("click", closeModal);
  closeBtn.addEventListener("click", closeModal);
  document.addEventListener("keydown", function(e) { if (e.key === "Escape") closeModal(); });

  q.form.addEventListener("submit", function(e) { if (items) e.preventDefault(); });
  q.addEventListener("input", render);

  fetch(body.dataset.catalog, { cache: "no-store" })
    .then(function(res) {
      if (!res.ok) throw new Error("Failed to load " + body.dataset.catalog);
      return res.json();
    })
    .then(function(cat) {
      items = cat.items || [];
      var initial = new URLSearchParams(window.location.search).get("q");
      if (initial !== null && q.value === "") q.value = initial;
      if (q.value.trim() !== "") render();
    })
    .catch(function() { items = null; });
})();
`
