package templates

var Prediction = `{{define "content"}}
<h1>Prediksi Sentimen</h1>

<form class="card" method="post" action="/prediksi">
	<label>Masukkan teks di sini:
		<input type="text" name="text" value="{{.Input}}" size="80" placeholder="Contoh: Saya sangat bangga dengan prestasi atlet di PON 2024">
	</label>
	<button type="submit">Prediksi Sentimen</button>
</form>

{{with .Last}}<div class="card">Prediksi terakhir Anda: <strong>{{.}}</strong></div>{{end}}

{{if .Warning}}<div class="card warning">{{.Warning}}</div>{{end}}

{{with .Prediction}}
<div class="card" style="background-color:{{.Color}};text-align:center;color:#ffffff">
	<div style="font-weight:bold;font-size:1.5rem">Prediksi Sentimen:</div>
	<div style="font-weight:bold;font-size:2.5rem">{{.Label}}</div>
</div>

<h3 title="Confidence Score menunjukkan tingkat keyakinan model terhadap setiap kelas. Semakin tinggi nilainya, semakin yakin model terhadap prediksi tersebut.">Confidence Score per Kelas</h3>
{{range .Scores}}
<div><strong>{{.Sentimen}}: {{printf "%.2f" .Persentase}}%</strong></div>
<div style="background-color:#e0e0e0;border-radius:5px;width:100%;height:20px;margin-bottom:1rem">
	<div style="width:{{.Persentase}}%;background-color:{{.Color}};height:100%;border-radius:5px"></div>
</div>
{{end}}
{{end}}
{{end}}`
