// Package templates holds the HTML pages served by httpapi.
// Each page defines a "content" block rendered inside Layout.
package templates

var Layout = `{{define "layout"}}<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} | Analisis Sentimen Pelaksanaan PON 2024</title>
<link rel="stylesheet" href="/static/style.css">
<style>
body{
	font-family:sans-serif;
	margin:0;
	color:#333333;
}
nav{
	background:#262730;
	padding:1rem 2rem;
}
nav a{
	color:#ffffff;
	margin-right:1.5rem;
	text-decoration:none;
}
main{
	padding:1rem 2rem;
}
.card{
	border:1px solid #e0e0e0;
	border-radius:8px;
	padding:1rem;
	margin-bottom:1rem;
}
.row{
	display:flex;
	gap:1rem;
	flex-wrap:wrap;
}
.row > .card{
	flex:1;
	min-width:280px;
}
.error{
	background:#ffe0e0;
	color:#a00000;
}
.warning{
	background:#fff6d5;
	color:#7a5b00;
}
.info{
	background:#e0f0ff;
}
.success{
	background:#e0ffe8;
}
table{
	width:100%;
	border-collapse:collapse;
}
td, th{
	border-bottom:1px solid #eeeeee;
	padding:0.3rem;
	text-align:left;
}
</style>
</head>
<body>
<nav>
	<a href="/">Dashboard</a>
	<a href="/prediksi">Prediksi Sentimen</a>
</nav>
<main>
{{if .Error}}<div class="card error">{{.Error}}</div>{{else}}{{template "content" .}}{{end}}
</main>
</body>
</html>
{{end}}`
