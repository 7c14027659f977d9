package explore

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Info(ctx context.Context, id int) (Image, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Image), args.Error(1)
}

func fixedRand(id int) Option {
	return WithRand(func(int) int { return id })
}

func TestViewer_InitialState(t *testing.T) {
	v := NewViewer(new(MockFetcher), 0, slog.Default())

	s := v.Snapshot()
	assert.Equal(t, StateLoading, s.State)
	assert.Nil(t, s.Image)
	assert.Equal(t, DefaultMaxID, v.maxID)
}

func TestViewer_Load_Success(t *testing.T) {
	fetcher := new(MockFetcher)
	img := Image{ID: "237", Author: "André Spieker", DownloadURL: "https://picsum.photos/id/237/3500/2095"}
	fetcher.On("Info", mock.Anything, 237).Return(img, nil)

	v := NewViewer(fetcher, 1000, slog.Default(), fixedRand(237))

	s, err := v.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StateReady, s.State)
	require.NotNil(t, s.Image)
	assert.Equal(t, img, *s.Image)
	fetcher.AssertExpectations(t)
}

func TestViewer_Load_Failure(t *testing.T) {
	tests := []struct {
		name string
		img  Image
		err  error
	}{
		{
			name: "network error",
			err:  errors.New("connection refused"),
		},
		{
			name: "malformed response",
			img:  Image{Author: "nobody"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := new(MockFetcher)
			fetcher.On("Info", mock.Anything, 5).Return(tt.img, tt.err)
			v := NewViewer(fetcher, 10, slog.Default(), fixedRand(5))

			s, err := v.Load(context.Background())

			assert.ErrorIs(t, err, ErrFetchFailed)
			assert.Equal(t, StateLoading, s.State)
			assert.Nil(t, s.Image)
		})
	}
}

func TestViewer_RetryReplacesImage(t *testing.T) {
	fetcher := new(MockFetcher)
	ids := []int{1, 2}
	call := 0
	v := NewViewer(fetcher, 10, slog.Default(), WithRand(func(n int) int {
		id := ids[call]
		call++
		return id
	}))

	fetcher.On("Info", mock.Anything, 1).Return(Image{}, errors.New("timeout"))
	fetcher.On("Info", mock.Anything, 2).Return(Image{ID: "2", DownloadURL: "https://picsum.photos/id/2/10/10"}, nil)

	_, err := v.Load(context.Background())
	require.Error(t, err)

	s, err := v.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateReady, s.State)
	assert.Equal(t, "2", s.Image.ID)
}

func TestViewer_MountLoadsOnce(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.On("Info", mock.Anything, 7).Return(Image{ID: "7", DownloadURL: "https://picsum.photos/id/7/10/10"}, nil).Once()
	v := NewViewer(fetcher, 10, slog.Default(), fixedRand(7))

	_, err := v.Mount(context.Background())
	require.NoError(t, err)
	s, err := v.Mount(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StateReady, s.State)
	fetcher.AssertNumberOfCalls(t, "Info", 1)
}

func TestViewer_RandomIDWithinRange(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.On("Info", mock.Anything, mock.MatchedBy(func(id int) bool {
		return id >= 0 && id < 3
	})).Return(Image{ID: "1", DownloadURL: "u"}, nil)

	v := NewViewer(fetcher, 3, slog.Default())
	for i := 0; i < 20; i++ {
		_, err := v.Load(context.Background())
		require.NoError(t, err)
	}
	fetcher.AssertExpectations(t)
}

type gatedFetcher struct {
	started chan int
	gates   map[int]chan struct{}
}

func (f *gatedFetcher) Info(_ context.Context, id int) (Image, error) {
	f.started <- id
	<-f.gates[id]
	return Image{ID: strconv.Itoa(id), DownloadURL: "https://picsum.photos/id/" + strconv.Itoa(id) + "/10/10"}, nil
}

func TestViewer_Load_LatestRequestWins(t *testing.T) {
	// Arrange
	fetcher := &gatedFetcher{
		started: make(chan int),
		gates:   map[int]chan struct{}{1: make(chan struct{}), 2: make(chan struct{})},
	}
	next := 0
	v := NewViewer(fetcher, 10, slog.Default(), WithRand(func(int) int {
		next++
		return next
	}))

	type result struct {
		snap Snapshot
		err  error
	}
	older := make(chan result, 1)
	newer := make(chan result, 1)

	// Act
	go func() {
		s, err := v.Load(context.Background())
		older <- result{s, err}
	}()
	require.Equal(t, 1, <-fetcher.started)

	go func() {
		s, err := v.Load(context.Background())
		newer <- result{s, err}
	}()
	require.Equal(t, 2, <-fetcher.started)

	close(fetcher.gates[2])
	r := <-newer
	require.NoError(t, r.err)
	require.NotNil(t, r.snap.Image)
	assert.Equal(t, "2", r.snap.Image.ID)

	close(fetcher.gates[1])
	r = <-older

	// Assert
	require.NoError(t, r.err)
	s := v.Snapshot()
	assert.Equal(t, StateReady, s.State)
	require.NotNil(t, s.Image)
	assert.Equal(t, "2", s.Image.ID)
	assert.Equal(t, "2", r.snap.Image.ID)
}
