package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delta/pon-sentimen-dashboard/models"
)

func fixture() []models.Tweet {
	return []models.Tweet{
		{
			Username:     "budi",
			FullText:     "Bangga sama atlet PON",
			Sentimen:     models.Positif,
			SwremoveText: "['bangga', 'atlet', 'pon']",
			Hashtag:      "['PON2024', 'Aceh']",
			Mention:      "['ponxxi', 'kemenpora']",
		},
		{
			Username:     "budi",
			FullText:     "Atlet hebat juara",
			Sentimen:     models.Positif,
			SwremoveText: "['atlet', 'hebat', 'juara']",
			Hashtag:      "['pon2024']",
			Mention:      "['ponxxi']",
		},
		{
			Username:     "sari",
			FullText:     "Jadwal tanding hari ini",
			Sentimen:     models.Netral,
			SwremoveText: "['jadwal', 'tanding', 'hari']",
			Hashtag:      "[]",
			Mention:      "[]",
		},
		{
			Username:     "andi",
			FullText:     "Venue becek parah",
			Sentimen:     models.Negatif,
			SwremoveText: "['venue', 'becek', 'parah', 'atlet']",
			Hashtag:      "['Aceh']",
			Mention:      "['ponxxi']",
		},
		{
			Username:     "sari",
			FullText:     "Atlet kecewa venue",
			Sentimen:     models.Negatif,
			SwremoveText: "['atlet', 'kecewa', 'venue']",
			Hashtag:      "['PON2024']",
			Mention:      "[]",
		},
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, Counts{Total: 5, Positif: 2, Netral: 1, Negatif: 2}, Count(fixture()))
	assert.Equal(t, Counts{}, Count(nil))
}

func TestDistribution(t *testing.T) {
	got := Distribution(fixture())
	require.Len(t, got, 3)

	assert.Equal(t, models.Negatif, got[0].Sentimen, "ties are broken alphabetically")
	assert.Equal(t, "Negatif (40.0%)", got[0].Label)
	assert.Equal(t, "#FF5959", got[0].Color)
	assert.Equal(t, models.Positif, got[1].Sentimen)
	assert.Equal(t, SentimenShare{
		Sentimen:   models.Netral,
		Jumlah:     1,
		Persentase: 20,
		Label:      "Netral (20.0%)",
		Color:      "#FACF5A",
	}, got[2])

	assert.Empty(t, Distribution(nil))
}

func TestNGramsAllClasses(t *testing.T) {
	got := NGrams(fixture(), models.All, 1, 3)

	assert.Equal(t, "n-gram", got.Column)
	assert.Equal(t, BarStack, got.BarMode)
	assert.Equal(t, []string{"atlet", "venue", "bangga"}, got.Order)
	assert.Equal(t, []NGramCount{
		{NGram: "atlet", Sentimen: models.Positif, Frekuensi: 2, Color: "#4F9DA6"},
		{NGram: "atlet", Sentimen: models.Negatif, Frekuensi: 2, Color: "#FF5959"},
		{NGram: "venue", Sentimen: models.Negatif, Frekuensi: 2, Color: "#FF5959"},
		{NGram: "bangga", Sentimen: models.Positif, Frekuensi: 1, Color: "#4F9DA6"},
	}, got.Rows)
}

func TestNGramsSingleClassSpansPosts(t *testing.T) {
	got := NGrams(fixture(), models.Negatif, 2, 2)

	assert.Equal(t, "2-gram", got.Column)
	assert.Equal(t, BarRelative, got.BarMode)
	assert.Equal(t, []string{"atlet atlet", "atlet kecewa"}, got.Order)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, 1, got.Rows[0].Frekuensi)
}

func TestNGramsDegenerate(t *testing.T) {
	assert.Empty(t, NGrams(fixture(), models.Netral, 4, 20).Rows)
	assert.Empty(t, NGrams(fixture(), models.All, 0, 20).Rows)
}

func TestTopUsersAll(t *testing.T) {
	got := TopUsers(fixture(), models.All, 2)

	assert.Equal(t, BarStack, got.BarMode)
	assert.Equal(t, []string{"@budi", "@sari"}, got.Order)
	assert.Equal(t, []UserCount{
		{User: "@budi", Sentimen: models.Negatif, Jumlah: 0, Color: "#FF5959"},
		{User: "@budi", Sentimen: models.Netral, Jumlah: 0, Color: "#FACF5A"},
		{User: "@budi", Sentimen: models.Positif, Jumlah: 2, Color: "#4F9DA6"},
		{User: "@sari", Sentimen: models.Negatif, Jumlah: 1, Color: "#FF5959"},
		{User: "@sari", Sentimen: models.Netral, Jumlah: 1, Color: "#FACF5A"},
		{User: "@sari", Sentimen: models.Positif, Jumlah: 0, Color: "#4F9DA6"},
	}, got.Rows)
}

func TestTopUsersFiltered(t *testing.T) {
	got := TopUsers(fixture(), models.Negatif, 10)

	assert.Equal(t, BarGroup, got.BarMode)
	assert.Equal(t, []string{"@andi", "@sari"}, got.Order)
	assert.Len(t, got.Rows, 2)
}

func TestTopMentions(t *testing.T) {
	got := TopMentions(fixture(), models.All, 1)

	assert.Equal(t, []string{"ponxxi"}, got.Order)
	assert.Equal(t, []MentionCount{
		{Mention: "ponxxi", Sentimen: models.Negatif, Jumlah: 1, Color: "#FF5959"},
		{Mention: "ponxxi", Sentimen: models.Positif, Jumlah: 2, Color: "#4F9DA6"},
	}, got.Rows)

	empty := TopMentions(fixture(), models.Netral, 10)
	assert.Empty(t, empty.Rows)
	assert.Empty(t, empty.Order)
}

func TestHashtags(t *testing.T) {
	all := Hashtags(fixture(), models.All)
	require.Len(t, all, 2)
	assert.Equal(t, "pon2024", all[0].Hashtag)
	assert.Equal(t, 3, all[0].Frekuensi)
	assert.Equal(t, "aceh", all[1].Hashtag)
	assert.Contains(t, models.Palette(), all[0].Color)
	assert.Equal(t, all[0].Color, Hashtags(fixture(), models.All)[0].Color, "colors are stable")

	neg := Hashtags(fixture(), models.Negatif)
	assert.Equal(t, []HashtagCount{
		{Hashtag: "aceh", Frekuensi: 1, Color: "#FF5959"},
		{Hashtag: "pon2024", Frekuensi: 1, Color: "#FF5959"},
	}, neg)

	assert.Empty(t, Hashtags(fixture(), models.Netral))
}

func TestWordCloud(t *testing.T) {
	tweets := append(fixture(), models.Tweet{
		Sentimen:     models.Positif,
		SwremoveText: "['2024', 'Atlet']",
	})

	got := WordCloud(tweets, models.Positif)
	assert.Equal(t, "#4F9DA6", got.Color)
	require.Len(t, got.Words, 5)
	assert.Equal(t, Word{Text: "atlet", Count: 3, Weight: 1}, got.Words[0])
	assert.Equal(t, "bangga", got.Words[1].Text)
	assert.InDelta(t, 1.0/3, got.Words[1].Weight, 1e-9)

	empty := WordCloud(nil, models.Netral)
	assert.NotNil(t, empty.Words)
	assert.Empty(t, empty.Words)
}

func TestWordCloudEmptyEncodesAsArray(t *testing.T) {
	b, err := json.Marshal(WordCloud(nil, models.Negatif))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"words":[]`)
}

func TestWordCloudSkipsOneCharacterTokens(t *testing.T) {
	tweets := []models.Tweet{
		{Sentimen: models.Netral, SwremoveText: "['x', 'jadwal', 'b', 'ok', '7']"},
	}

	got := WordCloud(tweets, models.Netral)
	require.Len(t, got.Words, 2)
	assert.Equal(t, "jadwal", got.Words[0].Text)
	assert.Equal(t, "ok", got.Words[1].Text)
}

func TestWordCloudCapsWords(t *testing.T) {
	var tweets []models.Tweet
	for i := 0; i < MaxCloudWords+50; i++ {
		tweets = append(tweets, models.Tweet{
			Sentimen:     models.Netral,
			SwremoveText: "['" + string(rune('a'+i%26)) + string(rune('a'+i/26)) + "']",
		})
	}
	assert.Len(t, WordCloud(tweets, models.Netral).Words, MaxCloudWords)
}

func TestSearch(t *testing.T) {
	got := Search(fixture(), "ATLET")
	assert.Equal(t, 3, got.Matched)
	assert.Equal(t, "Ditemukan 3 data yang cocok.", got.Message)

	byUser := Search(fixture(), "sar")
	assert.Equal(t, 2, byUser.Matched)
	assert.Equal(t, "sari", byUser.Rows[0].Username)

	none := Search(fixture(), "zzz")
	assert.Equal(t, 0, none.Matched)
	assert.Equal(t, "Tidak ada data yang cocok ditemukan.", none.Message)

	everything := Search(fixture(), "")
	assert.Equal(t, 5, everything.Matched)
	assert.Empty(t, everything.Message)

	literal := Search(fixture(), "a.*")
	assert.Equal(t, 0, literal.Matched, "queries are not regular expressions")
}
