package processor_test

import (
	"errors"
	"strings"
	"testing"

	"labelguard-backend/processor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_RejectsTinyInput(t *testing.T) {
	_, detail, err := processor.ExtractText([]byte("짧음"), processor.DefaultExtractors())

	require.ErrorIs(t, err, processor.ErrExtractionFailed)
	assert.Equal(t, "파일이 비어있거나 손상됨", detail)
}

func TestExtractText_PlainTextFallback(t *testing.T) {
	raw := []byte("제1조(목적) 이 기준은 식품등의 표시에 관한 사항을 정함으로써 소비자에게 정확한 정보를 제공함을 목적으로 한다. " + strings.Repeat("내용 ", 30))

	text, detail, err := processor.ExtractText(raw, processor.DefaultExtractors())

	require.NoError(t, err)
	assert.Equal(t, string(raw), text)
	assert.Contains(t, detail, "plaintext")
}

func TestExtractText_ChainTriesExtractorsInOrder(t *testing.T) {
	raw := []byte(strings.Repeat("x", 200))
	long := strings.Repeat("추출된 본문 ", 20)

	chain := []processor.Extractor{
		{Name: "broken", Extract: func([]byte) (string, error) {
			return "", errors.New("boom")
		}},
		{Name: "thin", Extract: func([]byte) (string, error) {
			return "너무 짧은 결과", nil // below the usable threshold
		}},
		{Name: "good", Extract: func([]byte) (string, error) {
			return long, nil
		}},
	}

	text, detail, err := processor.ExtractText(raw, chain)

	require.NoError(t, err)
	assert.Equal(t, long, text)
	assert.Contains(t, detail, "good")
}

func TestExtractText_AllExtractorsFail(t *testing.T) {
	raw := []byte(strings.Repeat("x", 200))
	chain := []processor.Extractor{
		{Name: "broken", Extract: func([]byte) (string, error) {
			return "", errors.New("boom")
		}},
	}

	_, detail, err := processor.ExtractText(raw, chain)

	require.ErrorIs(t, err, processor.ErrExtractionFailed)
	assert.Contains(t, detail, "추출 실패")
}
