package pipeline_test

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"mediatable/internal/inventory"
	"mediatable/internal/media/mediainfo"
	"mediatable/internal/pipeline"
	"mediatable/internal/testsupport"
)

func fixtureExtractor(fixtures map[string]string) pipeline.ExtractorFunc {
	return func(_ context.Context, path string) ([]byte, error) {
		body, ok := fixtures[filepath.Base(path)]
		if !ok {
			return nil, errors.New("no such file")
		}
		return []byte(body), nil
	}
}

func filenames(records []inventory.MediaRecord) []string {
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Filename)
	}
	slices.Sort(names)
	return names
}

func TestCollectIsolatesFailures(t *testing.T) {
	fixtures := map[string]string{
		"a.mkv":      testsupport.Document(t, "a.mkv", testsupport.General("Matroska"), testsupport.Video("V_MPEG4/ISO/AVC", "4500000", "1080", "Progressive")),
		"b.mp4":      testsupport.Document(t, "b.mp4", testsupport.General("MPEG-4"), testsupport.Audio("A_AAC", "128000", "CBR", "2")),
		"c.avi":      testsupport.Document(t, "c.avi", testsupport.General("AVI")),
		"broken.mkv": `{"media": {"track": [`,
		"bare.mkv":   testsupport.Document(t, "bare.mkv", testsupport.Video("avc1", "", "720", "")),
	}
	paths := []string{"/m/a.mkv", "/m/b.mp4", "/m/c.avi", "/m/broken.mkv", "/m/bare.mkv", "/m/gone.mkv"}

	engine := pipeline.New(fixtureExtractor(fixtures), pipeline.WithWorkers(3))
	result := engine.Collect(context.Background(), paths)

	if got, want := filenames(result.Records), []string{"a.mkv", "b.mp4", "c.avi"}; !slices.Equal(got, want) {
		t.Fatalf("records = %v, want %v", got, want)
	}
	if !slices.Equal(result.Skipped, []string{"/m/bare.mkv"}) {
		t.Fatalf("skipped = %v", result.Skipped)
	}
	if len(result.Failures) != 2 {
		t.Fatalf("expected 2 failures, got %+v", result.Failures)
	}
	kinds := map[string]string{}
	for _, failure := range result.Failures {
		kinds[failure.Path] = inventory.Kind(failure.Err)
	}
	if kinds["/m/broken.mkv"] != inventory.KindParse {
		t.Fatalf("broken.mkv kind = %q", kinds["/m/broken.mkv"])
	}
	if kinds["/m/gone.mkv"] != inventory.KindLaunch {
		t.Fatalf("gone.mkv kind = %q", kinds["/m/gone.mkv"])
	}
}

func TestCollectSetsPathAndNormalizesTracks(t *testing.T) {
	fixtures := map[string]string{
		"movie.mkv": testsupport.Document(t, "movie.mkv",
			testsupport.General("Matroska"),
			testsupport.Video("V_MPEGH/ISO/HEVC", "12000000", "2160", "Progressive"),
			testsupport.Audio("A_AC3", "640000", "CBR", "6"),
		),
	}
	result := pipeline.New(fixtureExtractor(fixtures)).Collect(context.Background(), []string{"/lib/movie.mkv"})
	if len(result.Records) != 1 {
		t.Fatalf("expected one record, got %+v", result)
	}
	record := result.Records[0]
	if record.Path != "/lib/movie.mkv" || record.Filename != "movie.mkv" || record.Container != "Matroska" {
		t.Fatalf("unexpected record identity: %+v", record)
	}
	want := inventory.VideoTrack{Codec: "HEVC", Bitrate: "12.00 mb/s", Height: "2160", ScanType: "p"}
	if record.Video[0] != want {
		t.Fatalf("video = %+v, want %+v", record.Video[0], want)
	}
	if record.Audio[0].Codec != "AC3" || record.Audio[0].Channels != "5.1" {
		t.Fatalf("unexpected audio: %+v", record.Audio[0])
	}
}

func TestCollectRespectsWorkerLimit(t *testing.T) {
	const workers = 3
	var inFlight, peak atomic.Int32
	doc := testsupport.Document(t, "x", testsupport.General("Matroska"))

	extractor := pipeline.ExtractorFunc(func(context.Context, string) ([]byte, error) {
		n := inFlight.Add(1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
		return []byte(doc), nil
	})

	paths := make([]string, 12)
	for i := range paths {
		paths[i] = filepath.Join("/m", string(rune('a'+i))+".mkv")
	}

	engine := pipeline.New(extractor, pipeline.WithWorkers(workers))
	if engine.Workers() != workers {
		t.Fatalf("Workers() = %d", engine.Workers())
	}
	result := engine.Collect(context.Background(), paths)
	if len(result.Records) != len(paths) {
		t.Fatalf("expected %d records, got %d", len(paths), len(result.Records))
	}
	if p := peak.Load(); p > workers {
		t.Fatalf("observed %d concurrent units, limit %d", p, workers)
	}
}

func TestWithWorkersFloorsAtOne(t *testing.T) {
	engine := pipeline.New(fixtureExtractor(nil), pipeline.WithWorkers(0))
	if engine.Workers() != 1 {
		t.Fatalf("Workers() = %d, want 1", engine.Workers())
	}
}

func TestCollectEmptyInput(t *testing.T) {
	result := pipeline.New(fixtureExtractor(nil)).Collect(context.Background(), nil)
	if len(result.Records) != 0 || len(result.Failures) != 0 || len(result.Skipped) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}

func TestCollectCancelledContext(t *testing.T) {
	var calls atomic.Int32
	extractor := pipeline.ExtractorFunc(func(context.Context, string) ([]byte, error) {
		calls.Add(1)
		return nil, nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := pipeline.New(extractor, pipeline.WithWorkers(2)).Collect(ctx, []string{"/m/a.mkv", "/m/b.mkv"})
	if calls.Load() != 0 {
		t.Fatalf("extractor should not run after cancellation, ran %d times", calls.Load())
	}
	if len(result.Failures) != 2 {
		t.Fatalf("expected 2 failures, got %+v", result.Failures)
	}
	for _, failure := range result.Failures {
		if !errors.Is(failure.Err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", failure.Err)
		}
	}
}

func TestCollectWithMediainfoClient(t *testing.T) {
	root := t.TempDir()
	paths := testsupport.WriteFiles(t, root, "ok.mkv", "broken.mkv", "missing.mkv")
	binary := testsupport.StubMediainfo(t, filepath.Join(t.TempDir(), "bin"), map[string]string{
		"ok.mkv":     testsupport.Document(t, "ok.mkv", testsupport.General("Matroska")),
		"broken.mkv": "not json",
	})

	engine := pipeline.New(mediainfo.Client{Binary: binary}, pipeline.WithWorkers(2))
	result := engine.Collect(context.Background(), paths)

	if got := filenames(result.Records); !slices.Equal(got, []string{"ok.mkv"}) {
		t.Fatalf("records = %v", got)
	}
	if len(result.Failures) != 2 {
		t.Fatalf("expected 2 failures, got %+v", result.Failures)
	}
}
