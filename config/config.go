package config

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/xuning888/seqlist/pkg/util"
	"gopkg.in/yaml.v3"
)

const (
	BackendZap    = "zap"
	BackendLogrus = "logrus"
)

type Properties struct {
	RunID         string `cfg:"runid" yaml:"runid"`
	LogLevel      string `cfg:"loglevel" yaml:"loglevel"`
	LogBackend    string `cfg:"logbackend" yaml:"logbackend"`
	LogPath       string `cfg:"logpath" yaml:"logpath"`
	EnableFileLog bool   `cfg:"enablefilelog" yaml:"enablefilelog"`
	TimeFormat    string `cfg:"timeformat" yaml:"timeformat"`
	DebugChecks   bool   `cfg:"debugchecks" yaml:"debugchecks"`
	// 脚本文件, 为空时从 stdin 读
	Script string `cfg:"script" yaml:"script"`

	// config file path
	CfPath string `cfg:"cf,omitempty" yaml:"-"`
}

var properties = Default()

// Default 没有配置文件时使用的配置
func Default() *Properties {
	p := &Properties{}
	p.applyDefaults()
	return p
}

func Get() *Properties {
	return properties
}

func parse(src io.Reader) (*Properties, error) {
	config := &Properties{}

	// read config file
	rawMap := make(map[string]string)
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " ")
		if pivot > 0 && pivot < len(line)-1 { // separator found
			key := line[0:pivot]
			value := strings.Trim(line[pivot+1:], " ")
			rawMap[strings.ToLower(key)] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// parse format
	t := reflect.TypeOf(config)
	v := reflect.ValueOf(config)
	n := t.Elem().NumField()
	for i := 0; i < n; i++ {
		field := t.Elem().Field(i)
		fieldVal := v.Elem().Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok || strings.TrimLeft(key, " ") == "" {
			key = field.Name
		}
		value, ok := rawMap[strings.ToLower(key)]
		if ok {
			// fill config
			switch field.Type.Kind() {
			case reflect.String:
				fieldVal.SetString(value)
			case reflect.Int:
				intValue, err := strconv.ParseInt(value, 10, 64)
				if err == nil {
					fieldVal.SetInt(intValue)
				}
			case reflect.Bool:
				boolValue := "yes" == value
				fieldVal.SetBool(boolValue)
			}
		}
	}
	return config, nil
}

func parseYAML(src io.Reader) (*Properties, error) {
	config := &Properties{}
	if err := yaml.NewDecoder(src).Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return config, nil
}

// SetUpConfig 读取配置文件, .yaml/.yml 按 yaml 解析, 其他按 "key value" 的行格式解析
func SetUpConfig(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "open config %s", filename)
	}
	defer util.Close(file)

	var p *Properties
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		p, err = parseYAML(file)
	default:
		p, err = parse(file)
	}
	if err != nil {
		return errors.Wrapf(err, "parse config %s", filename)
	}
	p.applyDefaults()
	if configFilePath, err := filepath.Abs(filename); err == nil {
		p.CfPath = configFilePath
	}
	properties = p
	return nil
}

func (p *Properties) applyDefaults() {
	if p.RunID == "" {
		p.RunID = uuid.NewString()
	}
	if p.LogLevel == "" {
		p.LogLevel = "info"
	}
	if p.LogBackend == "" {
		p.LogBackend = BackendZap
	}
	if p.LogPath == "" {
		p.LogPath = "."
	}
	if p.TimeFormat == "" {
		p.TimeFormat = "2006-01-02 15:04:05.000"
	}
}
