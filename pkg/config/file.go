package config

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/rakhi930/microgrid-dashboard/pkg/utils/ptr"
)

var (
	defaultFileConfig = &RawFileConfig{
		// The hosted simulator this dashboard was written against.
		APIURL:         ptr.To("https://rakhi5604.pythonanywhere.com"),
		RefreshSeconds: ptr.To(int(DefaultRefresh / time.Second)),
		MemoTTLSeconds: ptr.To(5),
	}
)

var _ Config = &File{}

type File struct {
	c        *RawFileConfig
	mu       *sync.RWMutex
	filepath string
}

func NewFile(configPath string) (*File, error) {
	f := &File{
		filepath: configPath,
		mu:       &sync.RWMutex{},
	}
	err := f.Load()
	if err != nil {
		return nil, err
	}

	return f, nil
}

func NewFileFromConfig(c *RawFileConfig, configPath string) *File {
	if c == nil {
		c = defaultFileConfig
	}

	f := &File{
		c:        c,
		mu:       &sync.RWMutex{},
		filepath: configPath,
	}

	return f
}

type RawFileConfig struct {
	APIURL         *string `json:"apiUrl,omitempty"`
	RefreshSeconds *int    `json:"refreshSeconds,omitempty"`
	MemoTTLSeconds *int    `json:"memoTtlSeconds,omitempty"`
}

func (f *File) APIURL() string {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	var url string

	if f.c.APIURL != nil {
		url = *f.c.APIURL
	} else {
		url = *defaultFileConfig.APIURL
	}

	return strings.TrimRight(url, "/")
}

func (f *File) RefreshInterval() time.Duration {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	var seconds int

	if f.c.RefreshSeconds != nil {
		seconds = *f.c.RefreshSeconds
	} else {
		seconds = *defaultFileConfig.RefreshSeconds
	}

	return ClampRefresh(time.Duration(seconds) * time.Second)
}

func (f *File) MemoTTL() time.Duration {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	var seconds int

	if f.c.MemoTTLSeconds != nil {
		seconds = *f.c.MemoTTLSeconds
	} else {
		seconds = *defaultFileConfig.MemoTTLSeconds
	}

	return time.Duration(seconds) * time.Second
}

func (f *File) SetAPIURL(url string) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.APIURL = &url
}

func (f *File) SetRefreshInterval(d time.Duration) {
	if f.c == nil {
		panic("config is nil")
	}

	seconds := int(ClampRefresh(d) / time.Second)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.RefreshSeconds = &seconds
}

func (f *File) Load() error {
	if err := f.loadFile(); err != nil {
		return err
	}

	f.applyEnvOverrides()

	return nil
}

func (f *File) loadFile() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	fp, err := os.Open(f.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			// If the file does not exist, return the empty config.
			// Do not make f.c a nil.
			f.c = &RawFileConfig{}
			return nil
		}
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	// Since we want to tell if the file is empty, using json.Decoder will
	// not work.
	b, err := io.ReadAll(fp)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to read file %s", f.filepath)
	}
	configString := string(b)

	if strings.TrimSpace(configString) == "" {
		// If the file is empty, return the empty config.
		// Do not make f.c a nil.
		f.c = &RawFileConfig{}
		return nil
	}

	conf := RawFileConfig{}
	err = json.Unmarshal(b, &conf)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to unmarshal config from file %s", f.filepath)
	}
	f.c = &conf

	return nil
}

func (f *File) Save() error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c == nil {
		return pkgerrors.New("config is nil")
	}

	fp, err := os.OpenFile(f.filepath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	enc := json.NewEncoder(fp)
	enc.SetIndent("", "  ")
	err = enc.Encode(f.c)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to encode config to file %s", f.filepath)
	}

	return nil
}

func (f *File) LogrusFields() logrus.Fields {
	if f.c == nil {
		panic("config is nil")
	}

	return logrus.Fields{
		"apiUrl":          f.APIURL(),
		"refreshInterval": f.RefreshInterval().String(),
		"memoTtl":         f.MemoTTL().String(),
	}
}
