package main

import (
	"context"
	"os"
	"time"

	"get_104_jobs/config"
	"get_104_jobs/storage"
	"get_104_jobs/utils"
	"get_104_jobs/worker/job104"

	log "github.com/sirupsen/logrus"
)

const (
	defaultConfigPath = "config.txt"
	defaultOutputPath = "104_jobs.xlsx"
)

func main() {
	configPath := defaultConfigPath
	outputPath := defaultOutputPath
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		outputPath = os.Args[2]
	}

	startTime := time.Now()

	params, err := config.ReadConfig(configPath)
	if err != nil {
		log.Fatalf("讀取設定失敗: %v", err)
	}

	jobs, err := job104.NewClient().Crawl(context.Background(), params)
	if err != nil {
		log.Fatalf("抓取職缺失敗: %v", err)
	}

	if len(jobs) == 0 {
		log.Info("沒有成功抓取到任何職缺。")
		return
	}

	if err := storage.ForPath(outputPath).Write(jobs); err != nil {
		log.Fatalf("寫入結果失敗: %v", err)
	}

	log.Infof("已完成，共 %d 筆職缺，結果已存到 %s，耗時 %s",
		len(jobs), outputPath, utils.FormatDuration(startTime, time.Now()))
}
