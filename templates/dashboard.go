package templates

var Dashboard = `{{define "content"}}
<h1>Dashboard Analisis Sentimen Pelaksanaan PON 2024</h1>

<form class="card" method="get" action="/">
	<label>Sentimen
		<select name="sentimen">
		{{range .Options}}<option value="{{.}}"{{if eq . $.Filters.Sentimen}} selected{{end}}>{{.}}</option>{{end}}
		</select>
	</label>
	<label>Top
		<input type="number" name="top" min="{{.MinTop}}" max="{{.MaxTop}}" value="{{.Filters.Top}}">
	</label>
	<button type="submit">Terapkan</button>
</form>

<div class="row">
	<div class="card">
		<p>Total Data<br><strong>{{.Counts.Total}}</strong></p>
		<p>Sentimen Positif<br><strong>{{.Counts.Positif}}</strong></p>
		<p>Sentimen Netral<br><strong>{{.Counts.Netral}}</strong></p>
		<p>Sentimen Negatif<br><strong>{{.Counts.Negatif}}</strong></p>
	</div>
	<div class="card" style="flex:3">
		<h3>Distribusi Sentimen</h3>
		<div id="distribution"></div>
	</div>
</div>

<div class="card">
	<h3>Wordcloud pada Masing-Masing Sentimen</h3>
	<div class="row">
		{{range .Labels}}<div class="card"><div style="text-align:center">Sentimen {{.}}</div><canvas class="wordcloud" data-sentimen="{{.}}" width="400" height="300"></canvas></div>{{end}}
	</div>
</div>

<div class="card">
	<h3>Frekuensi Penggunaan Kata Berdasarkan Sentimen</h3>
	<div class="row">
		<div class="card"><div style="text-align:center">Frekuensi Unigram (1-kata)</div><div id="ngram-1"></div></div>
		<div class="card"><div style="text-align:center">Frekuensi Bigram (2-kata)</div><div id="ngram-2"></div></div>
		<div class="card"><div style="text-align:center">Frekuensi Trigram (3-kata)</div><div id="ngram-3"></div></div>
	</div>
</div>

<div class="card">
	<h3>Pengguna Paling Aktif &amp; Sering Dimention Berdasarkan Sentimen</h3>
	<div class="row">
		<div class="card"><div style="text-align:center">Pengguna Paling Aktif</div><div id="users"></div></div>
		<div class="card"><div style="text-align:center">Pengguna Sering Dimention</div><div id="mentions"></div></div>
	</div>
</div>

<div class="card">
	<h3>Hashtag Terpopuler Berdasarkan Sentimen</h3>
	<div class="row">
		<div class="card" style="flex:3"><canvas id="hashtags" width="800" height="400"></canvas></div>
		<div class="card">
			<table>
				<tr><th>hashtag</th><th>frekuensi</th></tr>
				{{range .Hashtags}}<tr><td>{{.Hashtag}}</td><td>{{.Frekuensi}}</td></tr>{{end}}
			</table>
		</div>
	</div>
</div>

<div class="card">
	<h3>Pencarian Data</h3>
	<form method="get" action="/">
		<input type="hidden" name="sentimen" value="{{.Filters.Sentimen}}">
		<input type="hidden" name="top" value="{{.Filters.Top}}">
		<label>Cari Teks atau Username:
			<input type="text" name="q" value="{{.Search.Query}}" placeholder="Masukkan kata kunci atau username...">
		</label>
	</form>
	{{if .Search.Message}}<div class="card {{if .Search.Matched}}success{{else}}info{{end}}">{{.Search.Message}}</div>{{end}}
	<table>
		<tr><th>Username</th><th>Full Text</th><th>Sentimen</th></tr>
		{{range .Search.Rows}}<tr><td>{{.Username}}</td><td>{{.FullText}}</td><td>{{.Sentimen}}</td></tr>{{end}}
	</table>
</div>

<script src="https://cdn.plot.ly/plotly-2.35.2.min.js"></script>
<script src="https://cdnjs.cloudflare.com/ajax/libs/wordcloud2.js/1.2.2/wordcloud2.min.js"></script>
<script>
const filters = {{.Filters}};
const query = "?sentimen=" + encodeURIComponent(filters.sentimen) + "&top=" + filters.top;

function getJSON(path) {
	return fetch(path).then(function (r) { return r.json(); });
}

function bars(el, rows, y, x, order, barmode, horizontal) {
	const groups = {};
	(rows || []).forEach(function (r) {
		const g = groups[r.sentimen] || (groups[r.sentimen] = {x: [], y: [], color: r.color});
		g.x.push(r[x]);
		g.y.push(r[y]);
	});
	const traces = Object.keys(groups).map(function (s) {
		const g = groups[s];
		return horizontal
			? {type: "bar", orientation: "h", name: s, x: g.x, y: g.y, marker: {color: g.color}}
			: {type: "bar", name: s, x: g.y, y: g.x, marker: {color: g.color}};
	});
	const axis = {categoryorder: "array", categoryarray: order || []};
	Plotly.newPlot(el, traces, horizontal ? {barmode: barmode, yaxis: axis} : {barmode: barmode, xaxis: axis});
}

getJSON("/api/summary").then(function (d) {
	Plotly.newPlot("distribution", [{
		type: "bar",
		orientation: "h",
		x: d.distribution.map(function (r) { return r.jumlah; }),
		y: d.distribution.map(function (r) { return r.sentimen; }),
		text: d.distribution.map(function (r) { return r.label; }),
		marker: {color: d.distribution.map(function (r) { return r.color; })}
	}], {});
});

document.querySelectorAll("canvas.wordcloud").forEach(function (canvas) {
	getJSON("/api/wordcloud/" + canvas.dataset.sentimen).then(function (c) {
		WordCloud(canvas, {
			list: (c.words || []).map(function (w) { return [w.text, 10 + 50 * w.weight]; }),
			color: c.color,
			backgroundColor: "#ffffff"
		});
	});
});

[1, 2, 3].forEach(function (n) {
	getJSON("/api/ngrams" + query + "&n=" + n).then(function (d) {
		bars("ngram-" + n, d.rows, "ngram", "frekuensi", (d.order || []).slice().reverse(), d.bar_mode, true);
	});
});

getJSON("/api/users" + query).then(function (d) {
	bars("users", d.rows, "user", "jumlah", d.order, d.bar_mode, true);
});

getJSON("/api/mentions" + query).then(function (d) {
	bars("mentions", d.rows, "mention", "jumlah", d.order, "stack", true);
});

getJSON("/api/hashtags" + query).then(function (rows) {
	WordCloud(document.getElementById("hashtags"), {
		list: rows.map(function (r) { return [r.hashtag, 12 + 4 * r.frekuensi, r.color]; }),
		color: function (word, weight, fontSize, distance, theta, extra) { return extra; },
		backgroundColor: "#ffffff"
	});
});
</script>
{{end}}`
