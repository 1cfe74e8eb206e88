package web

// sampleCSV is the downloadable air-quality sample used to try the data
// analysis flow.
const sampleCSV = `Date,City,PM2.5,PM10,NO2,O3,Temperature,Humidity
2025-01-01,New York,12.5,25.3,45.2,32.1,15.5,65
2025-01-02,New York,15.2,28.7,48.9,35.6,12.3,70
2025-01-03,New York,18.7,32.1,52.4,38.2,10.1,75
2025-01-01,Los Angeles,8.9,18.5,38.7,42.3,22.1,45
2025-01-02,Los Angeles,11.3,21.2,41.5,45.8,20.8,50
2025-01-03,Los Angeles,14.6,24.8,44.9,48.1,19.2,55
`
