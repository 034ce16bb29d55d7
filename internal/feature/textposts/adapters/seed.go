package adapters

import "social_backend/internal/feature/textposts/domain/entity"

// SeedPosts はデモモードで配信する固定の10件のテキスト投稿を返します。
func SeedPosts() []entity.TextPost {
	return []entity.TextPost{
		{
			ID:      1,
			Title:   "When Data Engineers Debug",
			Content: "Step 1: Check logs\nStep 2: Blame Kafka\nStep 3: Restart everything\nStep 4: It magically works\n#DataEngineering #FunnyTech",
		},
		{
			ID:      2,
			Title:   "ETL in Real Life",
			Content: "Extract emotions, Transform into motivation, Load into career.\n#ETL #DataLife",
		},
		{
			ID:      3,
			Title:   "Data Engineer’s Horoscope",
			Content: "You will face missing values today. Don’t worry — a little cleaning will clear your path.\n#DataHumor #Analytics",
		},
		{
			ID:      4,
			Title:   "SQL Love Story",
			Content: "SELECT * FROM life WHERE happiness = TRUE;\nResult: 0 rows returned.\n#SQL #DeveloperHumor",
		},
		{
			ID:      5,
			Title:   "Data Pipeline Therapy",
			Content: "‘Tell me where it hurts,’ said the Data Engineer.\n‘Everywhere,’ whispered the DAG.\n#Airflow #ETL #TechJokes",
		},
		{
			ID:      6,
			Title:   "When AI Fails",
			Content: "People blame data engineers.\nWhen AI succeeds? Nobody remembers us.\n#AI #DataEngineeringTruth",
		},
		{
			ID:      7,
			Title:   "Data Engineer’s Workout Plan",
			Content: "Lifting tables. Dropping indexes. Running queries.\n#SQL #DataFitness",
		},
		{
			ID:      8,
			Title:   "Streaming Mindset",
			Content: "Batch people plan. Streamers adapt.\n#Kafka #DataStreaming #Mindset",
		},
		{
			ID:      9,
			Title:   "Null Values Everywhere",
			Content: "My data has more missing values than my sleep schedule.\n#DataQuality #FunnyData",
		},
		{
			ID:      10,
			Title:   "Career Advice",
			Content: "Learn data. The world runs on it.\nEven your memes are powered by recommendation algorithms.\n#DataCareer #Inspiration",
		},
	}
}
