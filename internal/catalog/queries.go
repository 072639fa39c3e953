package catalog

// entries is the catalog in display order. The statements use MySQL syntax
// (HOUR, YEAR, IF, boolean comparisons summed as integers).
var entries = []Entry{
	{
		Label: "Top 10 vehicles involved in drug-related stops",
		SQL: `
SELECT vehicle_number, COUNT(*) AS stop_count
FROM traffic_project
WHERE drugs_related_stop = 1
GROUP BY vehicle_number
ORDER BY stop_count DESC
LIMIT 10`,
	},
	{
		Label: "Vehicles most frequently searched",
		SQL: `
SELECT vehicle_number, COUNT(*) AS search_count
FROM traffic_project
WHERE search_conducted = TRUE
GROUP BY vehicle_number
ORDER BY search_count DESC`,
	},
	{
		Label: "Driver age group with highest arrest rate",
		SQL: `
SELECT
    CASE
        WHEN driver_age < 30 THEN '<30'
        WHEN driver_age BETWEEN 30 AND 50 THEN '30-50'
        WHEN driver_age BETWEEN 51 AND 70 THEN '51-70'
        ELSE '>70'
    END AS age_group,
    SUM(stop_outcome = 'Arrest') AS total_arrest
FROM traffic_project
GROUP BY age_group`,
	},
	{
		Label: "Gender distribution of drivers stopped in each country",
		SQL: `
SELECT country_name, driver_gender, COUNT(*) AS total_stops
FROM traffic_project
GROUP BY country_name, driver_gender
ORDER BY country_name, driver_gender`,
	},
	{
		Label: "Race and gender combination with highest search rate",
		SQL: `
SELECT
    driver_gender,
    driver_race,
    COUNT(*) AS total_stops,
    SUM(CASE WHEN search_conducted = 1 THEN 1 ELSE 0 END) AS total_searches,
    ROUND(SUM(CASE WHEN search_conducted = 1 THEN 1 ELSE 0 END) * 100.0 / COUNT(*), 2) AS search_rate_percent
FROM traffic_project
GROUP BY driver_gender, driver_race
ORDER BY search_rate_percent DESC`,
	},
	{
		Label: "Time of day with most traffic stops",
		SQL: `
SELECT stop_time, COUNT(*) AS traffic_time
FROM traffic_project
GROUP BY stop_time
ORDER BY traffic_time DESC`,
	},
	{
		Label: "Average stop duration for different violations",
		SQL: `
SELECT
    violation,
    AVG(
        CASE
            WHEN stop_duration = '0-15 Min' THEN 7
            WHEN stop_duration = '16-30 Min' THEN 23
            WHEN stop_duration = '30+ Min' THEN 35
        END
    ) AS avg_stop_duration_minutes
FROM traffic_project
GROUP BY violation
ORDER BY avg_stop_duration_minutes DESC`,
	},
	{
		Label: "Are stops during night more likely to lead to arrests?",
		SQL: `
SELECT
    CASE
        WHEN HOUR(stop_time) BETWEEN 0 AND 5 THEN 'Night'
        ELSE 'Other'
    END AS time_of_day,
    COUNT(*) AS total_stops,
    SUM(stop_outcome = 'Arrest') AS total_arrests
FROM traffic_project
GROUP BY time_of_day`,
	},
	{
		Label: "Violations most associated with searches or arrests",
		SQL: `
SELECT
    violation,
    SUM(search_conducted = 1) AS total_searches,
    SUM(stop_outcome = 'Arrest') AS total_arrest
FROM traffic_project
GROUP BY violation
ORDER BY total_searches DESC, total_arrest DESC`,
	},
	{
		Label: "Violations most common among younger drivers (<25)",
		SQL: `
SELECT violation, COUNT(*) AS total_stop
FROM traffic_project
WHERE driver_age < 25
GROUP BY violation
ORDER BY total_stop DESC`,
	},
	{
		Label: "Violation rarely results in search or arrest",
		SQL: `
SELECT
    violation,
    SUM(search_conducted = 1) AS total_searches,
    SUM(stop_outcome = 'Arrest') AS total_arrests,
    COUNT(*) AS total_stop
FROM traffic_project
GROUP BY violation
ORDER BY total_searches ASC, total_arrests ASC`,
	},
	{
		Label: "Countries with highest rate of drug-related stops",
		SQL: `
SELECT
    country_name,
    COUNT(*) AS total_stop,
    SUM(IF(drugs_related_stop = 1, 1, 0)) AS drug_stop,
    ROUND(SUM(IF(drugs_related_stop = 1, 1, 0)) * 100.0 / COUNT(*), 2) AS drug_stop_rate_percent
FROM traffic_project
GROUP BY country_name
ORDER BY drug_stop DESC`,
	},
	{
		Label: "Arrest rate by country and violation",
		SQL: `
SELECT
    country_name,
    violation,
    COUNT(*) AS total_stop,
    SUM(IF(stop_outcome = 'Arrest', 1, 0)) AS Arrest_stop,
    ROUND(SUM(IF(stop_outcome = 'Arrest', 1, 0)) * 100.0 / COUNT(*), 2) AS Arrest_rate_percent
FROM traffic_project
GROUP BY country_name, violation
ORDER BY Arrest_rate_percent DESC`,
	},
	{
		Label: "Country with most stops with search conducted",
		SQL: `
SELECT
    country_name,
    COUNT(*) AS total_stop,
    SUM(search_conducted = 1) AS search_stop
FROM traffic_project
GROUP BY country_name
ORDER BY search_stop DESC`,
	},
	{
		Label: "Yearly Breakdown of Stops and Arrests by Country (Using Subquery and Window Functions)",
		SQL: `
SELECT
    country_name,
    year,
    total_stops,
    total_arrests,
    ROUND(total_arrests * 100.0 / total_stops, 2) AS arrest_rate_percent,
    RANK() OVER (PARTITION BY year ORDER BY total_arrests DESC) AS rank_by_arrests
FROM (
    SELECT
        country_name,
        YEAR(stop_date) AS year,
        COUNT(*) AS total_stops,
        SUM(stop_outcome = 'Arrest') AS total_arrests
    FROM traffic_project
    GROUP BY country_name, YEAR(stop_date)
) AS yearly_data
ORDER BY year, country_name`,
	},
	{
		Label: "Driver Violation Trends Based on Age and Race (Join with Subquery)",
		SQL: `
SELECT
    ab.age_group AS age_group,
    p.driver_race AS race,
    p.violation AS violation,
    COUNT(*) AS stops
FROM (
    SELECT driver_age, driver_race, violation
    FROM traffic_project
) AS p
JOIN (
    SELECT DISTINCT
        driver_age,
        CASE
            WHEN driver_age < 20 THEN 'Under 20'
            WHEN driver_age BETWEEN 20 AND 30 THEN '20-30'
            WHEN driver_age BETWEEN 31 AND 50 THEN '31-50'
            ELSE '50+'
        END AS age_group
    FROM traffic_project
    WHERE driver_age IS NOT NULL
) AS ab
ON p.driver_age = ab.driver_age
GROUP BY ab.age_group, p.driver_race, p.violation
ORDER BY age_group, race, violation`,
	},
	{
		Label: "Time Period Analysis of Stops (Year, Month, Hour)",
		SQL: `
SELECT
    t.country_name,
    YEAR(t.stop_date) AS year,
    MONTH(t.stop_date) AS month,
    HOUR(t.stop_time) AS hour,
    COUNT(*) AS total_stops
FROM traffic_project t
WHERE t.stop_date IS NOT NULL
  AND t.stop_time IS NOT NULL
GROUP BY
    t.country_name,
    YEAR(t.stop_date),
    MONTH(t.stop_date),
    HOUR(t.stop_time)
ORDER BY
    YEAR(t.stop_date),
    MONTH(t.stop_date),
    HOUR(t.stop_time),
    t.country_name`,
	},
	{
		Label: "Violations with High Search and Arrest Rates (Window Function)",
		SQL: `
SELECT
    violation,
    total_stops,
    total_searches,
    total_arrests,
    ROUND(total_searches * 100.0 / total_stops, 2) AS search_rate_percent,
    ROUND(total_arrests * 100.0 / total_stops, 2) AS arrest_rate_percent,
    RANK() OVER (ORDER BY (total_arrests * 1.0 / total_stops) DESC) AS rank_by_arrest_rate
FROM (
    SELECT
        violation,
        COUNT(*) AS total_stops,
        SUM(search_conducted = 1) AS total_searches,
        SUM(stop_outcome = 'Arrest') AS total_arrests
    FROM traffic_project
    GROUP BY violation
) v
ORDER BY arrest_rate_percent DESC`,
	},
	{
		Label: "Driver Demographics by Country (Age, Gender, Race)",
		SQL: `
SELECT
    COUNT(*) AS drivers,
    driver_age,
    country_name,
    driver_gender,
    driver_race
FROM traffic_project
GROUP BY driver_age, country_name, driver_gender, driver_race
ORDER BY driver_age`,
	},
	{
		Label: "Top 5 Violations with Highest Arrest Rates",
		SQL: `
SELECT
    violation,
    COUNT(*) AS total_stops,
    SUM(stop_outcome = 'Arrest') AS total_arrests,
    ROUND(SUM(stop_outcome = 'Arrest') * 100.0 / COUNT(*), 2) AS arrest_rate_percent
FROM traffic_project
GROUP BY violation
ORDER BY arrest_rate_percent DESC
LIMIT 5`,
	},
}
