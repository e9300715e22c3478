package emotion_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	analysis "github.com/Duggu05-coder/Lumos/internal/analysis/emotion"
	"github.com/Duggu05-coder/Lumos/internal/model/record"
	emotionservice "github.com/Duggu05-coder/Lumos/internal/service/emotion"
	"github.com/Duggu05-coder/Lumos/internal/service/session"
)

func newService(t *testing.T) (*emotionservice.Service, record.Session) {
	t.Helper()
	store := session.NewService()
	nop := zerolog.Nop()
	seed := uint64(11)
	svc := emotionservice.NewService(store, emotionservice.Config{Seed: &seed, Logger: &nop})

	sess, err := svc.CreateSession(context.Background())
	require.NoError(t, err)
	return svc, sess
}

func darkPNG(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{30, 30, 30, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestAnalyzeTextStoresRecordAndResponse(t *testing.T) {
	svc, sess := newService(t)
	ctx := context.Background()

	out, err := svc.Analyze(ctx, sess.ID, emotionservice.Input{Type: record.InputText, Text: "  I am so scared  "})
	require.NoError(t, err)
	assert.Equal(t, analysis.Fear, out.Record.Label)
	assert.Equal(t, "I am so scared", out.Record.Content)
	assert.Equal(t, analysis.Fear, out.Response.Label)
	assert.LessOrEqual(t, len(out.Response.Remedies), 2)

	history, err := svc.History(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, out.Record.ID, history[0].Response.EmotionRecordID)
	assert.Equal(t, out.Response.FullText, history[0].Response.ResponseText)
	assert.Equal(t, out.Response.Remedies, history[0].Response.Remedies)
	assert.Equal(t, record.ResponseTypeComprehensive, history[0].Response.ResponseType)
}

func TestAnalyzeFacialDoesNotStoreImage(t *testing.T) {
	svc, sess := newService(t)

	out, err := svc.Analyze(context.Background(), sess.ID, emotionservice.Input{Type: record.InputFacial, ImageData: darkPNG(t)})
	require.NoError(t, err)
	assert.Equal(t, analysis.Result{Label: analysis.Sadness, Confidence: 0.5}, analysis.Result{Label: out.Record.Label, Confidence: out.Record.Confidence})
	assert.Equal(t, record.FacialPlaceholder, out.Record.Content)
}

func TestAnalyzeVoiceMatchesText(t *testing.T) {
	svc, sess := newService(t)

	out, err := svc.Analyze(context.Background(), sess.ID, emotionservice.Input{
		Type:          record.InputVoice,
		Text:          "i keep having a nightmare",
		AudioFeatures: analysis.AudioFeatures{"pitch": 180},
	})
	require.NoError(t, err)
	assert.Equal(t, svc.ClassifyText("i keep having a nightmare"), analysis.Result{Label: out.Record.Label, Confidence: out.Record.Confidence})
	assert.Equal(t, record.InputVoice, out.Record.InputType)
}

func TestAnalyzeRejectsBadInput(t *testing.T) {
	svc, sess := newService(t)
	ctx := context.Background()

	_, err := svc.Analyze(ctx, sess.ID, emotionservice.Input{Type: record.InputText, Text: "   "})
	assert.ErrorIs(t, err, emotionservice.ErrEmptyInput)

	_, err = svc.Analyze(ctx, sess.ID, emotionservice.Input{Type: record.InputFacial})
	assert.ErrorIs(t, err, emotionservice.ErrEmptyInput)

	_, err = svc.Analyze(ctx, sess.ID, emotionservice.Input{Type: "smell", Text: "x"})
	assert.ErrorIs(t, err, emotionservice.ErrUnsupportedInput)

	_, err = svc.Analyze(ctx, "missing", emotionservice.Input{Type: record.InputText, Text: "hi"})
	assert.ErrorIs(t, err, record.ErrSessionNotFound)
}

func TestInsightsOverStoredRecords(t *testing.T) {
	svc, sess := newService(t)
	ctx := context.Background()

	for _, text := range []string{"i am glad", "so glad today", "feeling gloomy"} {
		_, err := svc.Analyze(ctx, sess.ID, emotionservice.Input{Type: record.InputText, Text: text})
		require.NoError(t, err)
	}

	summary, n, err := svc.Insights(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, analysis.Joy, summary.DominantEmotion)
	assert.InDelta(t, 66.67, summary.EmotionPercentages[analysis.Joy], 0.01)

	require.NoError(t, svc.ClearHistory(ctx, sess.ID))
	summary, n, err = svc.Insights(ctx, sess.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.True(t, summary.IsEmpty())
}

func TestServiceWithoutStore(t *testing.T) {
	nop := zerolog.Nop()
	svc := emotionservice.NewService(nil, emotionservice.Config{Logger: &nop})

	_, err := svc.Analyze(context.Background(), "s", emotionservice.Input{Type: record.InputText, Text: "hi"})
	assert.ErrorIs(t, err, emotionservice.ErrStoreUnavailable)

	assert.Equal(t, analysis.Fallback(), svc.ClassifyText(""))
	assert.Equal(t, analysis.Fallback(), svc.ClassifyFacial("garbage"))
	assert.Equal(t, analysis.Neutral, svc.GenerateResponse("not_a_real_label", 0.4).Label)
	assert.Equal(t, "4-7-8 Breathing", svc.BreathingExercise("478").Name)
	assert.Len(t, svc.CopingStrategies("unknown"), 3)
	assert.True(t, svc.SummarizeInsights(nil).IsEmpty())
}

func TestSeededServicesAgree(t *testing.T) {
	nop := zerolog.Nop()
	seed := uint64(5)
	a := emotionservice.NewService(nil, emotionservice.Config{Seed: &seed, Logger: &nop})
	b := emotionservice.NewService(nil, emotionservice.Config{Seed: &seed, Logger: &nop})

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.GenerateResponse(analysis.Anger, 0.9), b.GenerateResponse(analysis.Anger, 0.9))
	}
}
