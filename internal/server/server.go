package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/AnilRedshift/greeter_go/internal/api"
	"github.com/AnilRedshift/greeter_go/internal/api/common"
	"github.com/AnilRedshift/greeter_go/pkg/structured_error"
	"github.com/sirupsen/logrus"
)

const (
	minPort = 1
	maxPort = 65535

	shutdownTimeout = 5 * time.Second
)

type State int

const (
	NotListening State = iota
	Listening
	Stopped
)

func (s State) String() string {
	switch s {
	case NotListening:
		return "not listening"
	case Listening:
		return "listening"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type Server struct {
	config common.Config
	log    logrus.FieldLogger
	http   *http.Server

	mu    sync.Mutex
	state State
}

func New(config common.Config, log logrus.FieldLogger) *Server {
	return &Server{
		config: config,
		log:    log,
		http:   &http.Server{Handler: api.NewRouter(log)},
	}
}

func (s *Server) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Server) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

// Start binds the configured port and serves in the background. Bind errors
// come back synchronously as a BindFailure. Once bound, the returned channel
// receives the result of serving after ctx is cancelled or the listener
// fails, and is then closed.
func (s *Server) Start(ctx context.Context) (<-chan error, error) {
	s.mu.Lock()
	if s.state != NotListening {
		state := s.state
		s.mu.Unlock()
		return nil, fmt.Errorf("cannot start a server that is %s", state)
	}

	listener, err := listen(s.config.Port)
	if err != nil {
		s.state = Stopped
		s.mu.Unlock()
		return nil, err
	}
	s.state = Listening
	s.mu.Unlock()

	s.log.Info(fmt.Sprintf("Server is listening on port %d", s.config.Port))

	served := make(chan error, 1)
	go func() {
		served <- s.http.Serve(listener)
	}()

	done := make(chan error, 1)
	go func() {
		defer close(done)
		var err error
		select {
		case <-ctx.Done():
			s.log.Info("Shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			err = s.http.Shutdown(shutdownCtx)
			cancel()
			<-served
		case err = <-served:
			s.log.Error(fmt.Sprintf("Stopped serving %v", err))
		}
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		s.setState(Stopped)
		done <- err
	}()
	return done, nil
}

func listen(port int) (net.Listener, error) {
	if port < minPort || port > maxPort {
		err := fmt.Errorf("port %d is outside %d-%d", port, minPort, maxPort)
		return nil, structured_error.Wrap(err, structured_error.BindFailure)
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, structured_error.Wrap(err, structured_error.BindFailure)
	}
	return listener, nil
}
