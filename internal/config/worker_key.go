package config

type WorkerKeyStruct struct {
	RefreshQuizStatsQueue string
}

var WorkerKey = &WorkerKeyStruct{
	RefreshQuizStatsQueue: "refresh_quiz_stats_queue",
}
