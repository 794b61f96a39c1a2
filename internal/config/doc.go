// Package config loads stringjsx project configuration.
//
// The configuration lives in stringjsx.json at the project root;
// stringjsx.yaml and stringjsx.yml are accepted too. Missing files are not
// an error: LoadFromDir falls back to the defaults.
//
// # Configuration File Structure
//
//	{
//	  "render": {"maxDepth": 512},
//	  "server": {
//	    "addr": ":8080",
//	    "maxBodyBytes": 1048576,
//	    "readTimeout": "10s",
//	    "writeTimeout": "10s",
//	    "metricsNamespace": "stringjsx",
//	    "tracerName": "github.com/vango-dev/stringjsx"
//	  },
//	  "publish": {
//	    "backend": "s3",
//	    "bucket": "my-site",
//	    "prefix": "pages/",
//	    "region": "eu-west-1"
//	  },
//	  "log": {"level": "debug"}
//	}
//
// STRINGJSX_ADDR and STRINGJSX_LOG_LEVEL override server.addr and log.level.
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
