package uploads

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkarpov/hirehub/internal/apperr"
)

// fileHeader builds a real multipart.FileHeader the way gin would hand one
// to the store.
func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func dirEntries(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return entries
}

func TestSaveResume(t *testing.T) {
	store := NewStore(t.TempDir())
	fh := fileHeader(t, "cv.pdf", "application/pdf", []byte("%PDF-1.4 fake"))

	path, err := store.Save(fh, PurposeResume)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^resumes/resume-\d+-[0-9a-f]{8}\.pdf$`), path)

	content, err := os.ReadFile(filepath.Join(store.BaseDir, filepath.FromSlash(path)))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), content)
}

func TestSaveAvatar(t *testing.T) {
	store := NewStore(t.TempDir())
	fh := fileHeader(t, "me.png", "image/png", []byte("png-bytes"))

	path, err := store.Save(fh, PurposeAvatar)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^avatars/avatar-\d+-[0-9a-f]{8}\.png$`), path)
}

func TestRejectNonPDFResume(t *testing.T) {
	store := NewStore(t.TempDir())
	fh := fileHeader(t, "cv.docx", "application/msword", []byte("not a pdf"))

	_, err := store.Save(fh, PurposeResume)
	require.ErrorIs(t, err, apperr.ErrUploadRejected)
	assert.Empty(t, dirEntries(t, filepath.Join(store.BaseDir, "resumes")), "no partial file left behind")
}

func TestRejectNonImageAvatar(t *testing.T) {
	store := NewStore(t.TempDir())
	fh := fileHeader(t, "cv.pdf", "application/pdf", []byte("%PDF-1.4"))

	_, err := store.Save(fh, PurposeAvatar)
	require.ErrorIs(t, err, apperr.ErrUploadRejected)
	assert.Empty(t, dirEntries(t, filepath.Join(store.BaseDir, "avatars")))
}

func TestRejectOversizeFile(t *testing.T) {
	store := NewStore(t.TempDir())
	fh := fileHeader(t, "big.pdf", "application/pdf", make([]byte, MaxFileSize+1))

	_, err := store.Save(fh, PurposeResume)
	require.ErrorIs(t, err, apperr.ErrUploadRejected)
	assert.Empty(t, dirEntries(t, filepath.Join(store.BaseDir, "resumes")))
}

func TestGeneratedNamesDoNotCollide(t *testing.T) {
	store := NewStore(t.TempDir())

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		fh := fileHeader(t, "cv.pdf", "application/pdf", []byte("%PDF"))
		path, err := store.Save(fh, PurposeResume)
		require.NoError(t, err)
		require.False(t, seen[path], "generated name repeated: %s", path)
		seen[path] = true
	}
}

func TestRemove(t *testing.T) {
	store := NewStore(t.TempDir())
	fh := fileHeader(t, "cv.pdf", "application/pdf", []byte("%PDF"))

	path, err := store.Save(fh, PurposeResume)
	require.NoError(t, err)
	require.NoError(t, store.Remove(path))

	_, err = os.Stat(filepath.Join(store.BaseDir, filepath.FromSlash(path)))
	assert.True(t, os.IsNotExist(err))
}
